package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datakit/pkg/async"
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/profile"
	"github.com/dmitrymomot/datakit/pkg/records"
	"github.com/dmitrymomot/datakit/pkg/storage"
)

const (
	formatCSV     = "csv"
	formatParquet = "parquet"
)

type recordsFlags struct {
	rows      int
	seed      int64
	format    string
	out       string
	profile   string
	stdout    bool
	files     int
	noClobber bool
	genders   []string
	countries []string
}

func newRecordsCmd(a *app) *cobra.Command {
	f := &recordsFlags{}

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Generate synthetic person records",
		Long: `Generate records with a random 5-letter name, an age between 20 and 60,
a gender and a country, preceded by the header Name,Age,Gender,Country.

The file is written to the configured storage backend. Without --out a
unique name like records-<uuid>.csv is used. With --files N the files are
generated concurrently; if any of them fails, the ones already stored are
deleted again.

Examples:
  datakit records --rows 1000 --seed 42
  datakit records --rows 50 --format parquet --out people.parquet
  datakit records --profile profile.yaml --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRecords(cmd, f)
		},
	}

	cmd.Flags().IntVarP(&f.rows, "rows", "n", 100, "Number of records")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().StringVarP(&f.format, "format", "f", formatCSV, "Output format: csv or parquet")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output path in the storage backend")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "YAML profile with record settings")
	cmd.Flags().BoolVar(&f.stdout, "stdout", false, "Write to stdout instead of storage")
	cmd.Flags().IntVar(&f.files, "files", 1, "Number of files to generate concurrently; seeded runs use seed+i per file")
	cmd.Flags().BoolVar(&f.noClobber, "no-overwrite", false, "Fail if an output path already exists")
	cmd.Flags().StringSliceVar(&f.genders, "genders", nil, "Gender labels (comma separated)")
	cmd.Flags().StringSliceVar(&f.countries, "countries", nil, "Country labels (comma separated)")
	return cmd
}

func (a *app) runRecords(cmd *cobra.Command, f *recordsFlags) error {
	ctx := cmd.Context()
	start := time.Now()

	var opts []records.Option
	rows := f.rows
	var seed *int64

	if f.profile != "" {
		p, err := profile.Load(f.profile)
		if err != nil {
			return err
		}
		opts = append(opts, p.RecordOptions()...)
		seed = p.Records.Seed
		if !cmd.Flags().Changed("rows") && p.Records.Rows != nil {
			rows = *p.Records.Rows
		}
	}

	// Flags win over the profile.
	if cmd.Flags().Changed("seed") {
		seed = &f.seed
		opts = append(opts, records.WithSeed(f.seed))
	}
	if cmd.Flags().Changed("genders") {
		opts = append(opts, records.WithGenders(nonNil(f.genders)))
	}
	if cmd.Flags().Changed("countries") {
		opts = append(opts, records.WithCountries(nonNil(f.countries)))
	}

	var (
		ext  string
		save = records.Save
	)
	switch f.format {
	case formatCSV:
		ext = ".csv"
	case formatParquet:
		ext = ".parquet"
		save = records.SaveParquet
	default:
		return fmt.Errorf("unknown format %q: must be %q or %q", f.format, formatCSV, formatParquet)
	}

	if f.stdout {
		g := records.New(opts...)
		if f.format == formatParquet {
			return g.WriteParquet(a.stdout, rows)
		}
		return g.WriteCSV(a.stdout, rows)
	}

	if f.files < 1 {
		return fmt.Errorf("--files must be at least 1, got %d", f.files)
	}

	s, err := a.backend(ctx)
	if err != nil {
		return err
	}

	paths := make([]string, f.files)
	for i := range paths {
		paths[i] = shardPath(f.out, ext, i, f.files)
		if f.noClobber && s.Exists(ctx, paths[i]) {
			return fmt.Errorf("%w: %s", storage.ErrObjectExists, paths[i])
		}
	}

	futures := make([]*async.Future[string], 0, f.files)
	for i, path := range paths {
		shardOpts := opts
		var shardSeed *int64
		if seed != nil {
			v := *seed + int64(i)
			shardSeed = &v
			shardOpts = append(slices.Clone(opts), records.WithSeed(v))
		}

		futures = append(futures, async.Go(ctx, func(ctx context.Context) (string, error) {
			stored, err := save(ctx, s, path, rows, shardOpts...)
			if err != nil {
				a.log.ErrorContext(ctx, "records generation failed",
					logger.Destination(path),
					logger.Error(err),
				)
				return "", err
			}
			a.log.InfoContext(ctx, "records written",
				logger.Command("records"),
				logger.Rows(max(rows, 0)),
				logger.Seed(shardSeed),
				logger.OutputFormat(f.format),
				logger.Destination(stored),
				logger.Duration(time.Since(start)),
			)
			return stored, nil
		}))
	}

	stored, err := async.WaitAll(ctx, futures...)
	if err != nil {
		return errors.Join(err, a.rollback(ctx, s, stored))
	}
	for _, path := range stored {
		if _, err := fmt.Fprintln(a.stdout, s.URL(path)); err != nil {
			return err
		}
	}
	return nil
}

// rollback deletes the files of a run that did not complete. Empty entries
// belong to failed shards and have nothing to delete.
func (a *app) rollback(ctx context.Context, s storage.Storage, stored []string) error {
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for _, path := range stored {
		if path == "" {
			continue
		}
		if err := s.Delete(ctx, path); err != nil {
			a.log.ErrorContext(ctx, "rollback failed", logger.Destination(path), logger.Error(err))
			errs = append(errs, err)
			continue
		}
		a.log.WarnContext(ctx, "records removed after failed run", logger.Destination(path))
	}
	return errors.Join(errs...)
}

// shardPath names file i of total. A single file keeps out as is; several
// files get a zero padded index before the extension.
func shardPath(out, ext string, i, total int) string {
	if out == "" {
		return storage.NewKey("records", ext)
	}
	if total == 1 {
		return out
	}
	base := strings.TrimSuffix(out, filepath.Ext(out))
	if e := filepath.Ext(out); e != "" {
		ext = e
	}
	return fmt.Sprintf("%s-%03d%s", base, i, ext)
}

// nonNil keeps an explicitly empty flag distinguishable from an absent one.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
