package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/profile"
	"github.com/dmitrymomot/datakit/pkg/underscore"
)

type sentencesFlags struct {
	count      int
	words      int
	seed       int64
	targets    []string
	vocabulary []string
	vocabFile  string
	profile    string
}

func newSentencesCmd(a *app) *cobra.Command {
	f := &sentencesFlags{}

	cmd := &cobra.Command{
		Use:   "sentences",
		Short: "Generate sentences with target phrases underscored",
		Long: `Generate sentences of random words drawn from a vocabulary. Every
case-insensitive occurrence of a target phrase has its spaces replaced by
underscores, and the sentence is lowercased.

Examples:
  datakit sentences -n 5 --targets "machine learning" --vocabulary machine,learning,data
  datakit sentences --profile profile.yaml --seed 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSentences(cmd, f)
		},
	}

	cmd.Flags().IntVarP(&f.count, "count", "n", 10, "Number of sentences")
	cmd.Flags().IntVar(&f.words, "words", underscore.DefaultWordCount, "Words per sentence")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().StringArrayVarP(&f.targets, "targets", "t", nil, "Target phrase (repeatable)")
	cmd.Flags().StringSliceVar(&f.vocabulary, "vocabulary", nil, "Vocabulary words (comma separated)")
	cmd.Flags().StringVar(&f.vocabFile, "vocabulary-file", "", "File with one vocabulary word per line")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "YAML profile with sentence settings")
	return cmd
}

func (a *app) runSentences(cmd *cobra.Command, f *sentencesFlags) error {
	ctx := cmd.Context()

	var (
		opts       []underscore.Option
		targets    = f.targets
		vocabulary = f.vocabulary
		count      = f.count
		seed       *int64
	)

	if f.profile != "" {
		p, err := profile.Load(f.profile)
		if err != nil {
			return err
		}
		opts = append(opts, p.TemplaterOptions()...)
		seed = p.Sentences.Seed
		if !cmd.Flags().Changed("targets") {
			targets = p.Sentences.Targets
		}
		if !cmd.Flags().Changed("vocabulary") {
			vocabulary = p.Sentences.Vocabulary
		}
		if !cmd.Flags().Changed("count") && p.Sentences.Count != nil {
			count = *p.Sentences.Count
		}
	}

	if f.vocabFile != "" {
		words, err := readLines(f.vocabFile)
		if err != nil {
			return err
		}
		vocabulary = append(vocabulary, words...)
	}
	if f.profile == "" || cmd.Flags().Changed("words") {
		opts = append(opts, underscore.WithWordCount(f.words))
	}
	if cmd.Flags().Changed("seed") {
		seed = &f.seed
		opts = append(opts, underscore.WithSeed(f.seed))
	}

	sentences, err := underscore.Generate(targets, count, vocabulary, opts...)
	if err != nil {
		return err
	}

	for _, s := range sentences {
		if _, err := fmt.Fprintln(a.stdout, s); err != nil {
			return err
		}
	}

	a.log.DebugContext(ctx, "sentences generated",
		logger.Command("sentences"),
		logger.Rows(len(sentences)),
		logger.Seed(seed),
	)
	return nil
}

// readLines returns the trimmed non-empty lines of the file at path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
