package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/menucount"
	"github.com/dmitrymomot/datakit/pkg/randstr"
	"github.com/dmitrymomot/datakit/pkg/saltedhash"
	"github.com/dmitrymomot/datakit/pkg/stats"
	"github.com/dmitrymomot/datakit/pkg/triples"
)

func newStringsCmd(a *app) *cobra.Command {
	var (
		maxLength int
		count     int
		seed      int64
		charset   string
	)

	cmd := &cobra.Command{
		Use:   "strings",
		Short: "Generate random lowercase strings",
		Long: `Generate strings whose lengths are uniform between 1 and --max-length.

Examples:
  datakit strings --max-length 8 -n 20 --seed 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []randstr.Option{randstr.WithCharset(charset)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, randstr.WithSeed(seed))
			}

			out, err := randstr.Generate(maxLength, count, opts...)
			if err != nil {
				return err
			}
			for _, s := range out {
				if _, err := fmt.Fprintln(a.stdout, s); err != nil {
					return err
				}
			}

			a.log.DebugContext(cmd.Context(), "strings generated",
				logger.Command("strings"),
				logger.Rows(len(out)),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxLength, "max-length", 10, "Maximum string length")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of strings")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().StringVar(&charset, "charset", "", "Characters to draw from (default a-z)")
	return cmd
}

func newMenuCmd(a *app) *cobra.Command {
	var (
		title string
		width int
	)

	cmd := &cobra.Command{
		Use:   "menu ORDER...",
		Short: "Count menu items across orders",
		Long: `Each argument is one order with comma separated items. Prints an
alphabetical frequency chart of all items.

Examples:
  datakit menu "Pizza,Burger" "Pizza,Coke" "Pasta"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders := make([][]string, 0, len(args))
			for _, arg := range args {
				var order []string
				for _, item := range strings.Split(arg, ",") {
					if item = strings.TrimSpace(item); item != "" {
						order = append(order, item)
					}
				}
				orders = append(orders, order)
			}

			bins, err := menucount.Count(orders)
			if err != nil {
				return err
			}
			return menucount.Render(a.stdout, title, bins, width)
		},
	}

	cmd.Flags().StringVar(&title, "title", "Menu Distribution", "Chart title")
	cmd.Flags().IntVar(&width, "width", 40, "Width of the longest bar")
	return cmd
}

func newHashCmd(a *app) *cobra.Command {
	var saltSize int

	cmd := &cobra.Command{
		Use:   "hash HEX",
		Short: "Salt and hash a hex payload with SHA-256",
		Long: `Decode HEX (\x prefixes allowed), prepend --salt-size random bytes and
print the base64 salt and the hex SHA-256 digest.

Examples:
  datakit hash F3BE8080 --salt-size 16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := saltedhash.Hash(args[0], saltSize)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "salt: %s\nhash: %s\n", res.Salt, res.Hash)
			return err
		},
	}

	cmd.Flags().IntVar(&saltSize, "salt-size", 16, "Salt length in bytes")
	return cmd
}

func newTriplesCmd(a *app) *cobra.Command {
	var (
		list  bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "triples",
		Short: "Enumerate three letter combinations",
		Long: `Enumerate every three letter lowercase combination (aaa to zzz) and
chart how many start with each letter. With --list the combinations are
printed as CSV with columns a,b,c instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := triples.Combinations()
			if list {
				return triples.WriteCSV(a.stdout, all)
			}
			return menucount.Render(a.stdout, "First Letter Frequency", triples.FirstLetterCounts(all), width)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Print the combinations as CSV")
	cmd.Flags().IntVar(&width, "width", 40, "Width of the longest bar")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats GROUP...",
		Short: "Mean and population variance of nested numbers",
		Long: `Each argument is one group of comma separated numbers. All groups are
flattened before the mean and population variance are computed.

Examples:
  datakit stats "1,2,3" "4,5,6"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := make([][]float64, 0, len(args))
			for _, arg := range args {
				var group []float64
				for _, field := range strings.Split(arg, ",") {
					if field = strings.TrimSpace(field); field == "" {
						continue
					}
					v, err := strconv.ParseFloat(field, 64)
					if err != nil {
						return fmt.Errorf("invalid number %q: %w", field, err)
					}
					group = append(group, v)
				}
				groups = append(groups, group)
			}

			s, err := stats.MeanVariance(groups)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "mean: %s\nvariance: %s\n",
				strconv.FormatFloat(s.Mean, 'g', -1, 64),
				strconv.FormatFloat(s.Variance, 'g', -1, 64),
			)
			return err
		},
	}
	return cmd
}
