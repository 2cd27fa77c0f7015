package underscore

import (
	"math/rand"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// phrase is a compiled target: a case-insensitive literal matcher and its
// underscored replacement.
type phrase struct {
	match       *regexp.Regexp
	replacement string
}

// Templater generates sentences and applies target phrases to them.
// It is not safe for concurrent use because it owns a random source.
type Templater struct {
	rnd        *rand.Rand
	vocabulary []string
	phrases    []phrase
	wordCount  int
	lower      cases.Caser
}

// New validates the vocabulary and compiles the target phrases once.
func New(targets, vocabulary []string, opts ...Option) (*Templater, error) {
	cfg := &config{wordCount: DefaultWordCount}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if cfg.wordCount <= 0 {
		return nil, ErrInvalidWordCount
	}

	return &Templater{
		rnd:        cfg.source(),
		vocabulary: slices.Clone(vocabulary),
		phrases:    compile(targets),
		wordCount:  cfg.wordCount,
		lower:      cases.Lower(language.Und),
	}, nil
}

func compile(targets []string) []phrase {
	out := make([]phrase, 0, len(targets))
	for _, t := range targets {
		out = append(out, phrase{
			match:       regexp.MustCompile("(?i)" + regexp.QuoteMeta(t)),
			replacement: strings.ReplaceAll(t, " ", "_"),
		})
	}
	return out
}

// Generate returns exactly n processed sentences.
// The vocabulary is checked before the count, so an empty vocabulary fails
// even when n is zero.
func Generate(targets []string, n int, vocabulary []string, opts ...Option) ([]string, error) {
	t, err := New(targets, vocabulary, opts...)
	if err != nil {
		return nil, err
	}
	return t.Sentences(n)
}

// Sentences returns exactly n processed sentences.
func (t *Templater) Sentences(n int) ([]string, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	out := make([]string, 0, n)
	for range n {
		out = append(out, t.Sentence())
	}
	return out, nil
}

// Sentence samples one sentence and applies the target phrases to it.
func (t *Templater) Sentence() string {
	words := make([]string, t.wordCount)
	for i := range words {
		words[i] = t.vocabulary[t.rnd.Intn(len(t.vocabulary))]
	}
	return t.Apply(strings.Join(words, " "))
}

// Apply underscores every target phrase occurrence in s, in target order,
// and lowercases the result. It does not touch the random source.
func (t *Templater) Apply(s string) string {
	for _, p := range t.phrases {
		s = p.match.ReplaceAllLiteralString(s, p.replacement)
	}
	return t.lower.String(s)
}
