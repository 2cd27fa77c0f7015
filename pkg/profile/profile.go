package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/datakit/pkg/records"
	"github.com/dmitrymomot/datakit/pkg/underscore"
)

// Profile is the decoded form of a profile file.
type Profile struct {
	Records   Records   `yaml:"records"`
	Sentences Sentences `yaml:"sentences"`
}

// Records holds record generator settings. Rows may be zero or negative,
// which yields a header-only file; nil means the caller's default.
type Records struct {
	Rows      *int     `yaml:"rows"`
	Seed      *int64   `yaml:"seed"`
	Genders   []string `yaml:"genders"`
	Countries []string `yaml:"countries"`
}

// Sentences holds templater settings.
type Sentences struct {
	Count      *int     `yaml:"count"`
	WordCount  int      `yaml:"word_count"`
	Seed       *int64   `yaml:"seed"`
	Targets    []string `yaml:"targets"`
	Vocabulary []string `yaml:"vocabulary"`
}

// Load reads and validates the profile at path.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadProfile, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse decodes and validates a profile. Unknown keys are rejected.
// An empty document yields the zero profile.
func Parse(r io.Reader) (*Profile, error) {
	var p Profile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrFailedToParseProfile, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the values that the generators would reject later.
func (p *Profile) Validate() error {
	var errs []error

	if p.Records.Genders != nil && len(p.Records.Genders) == 0 {
		errs = append(errs, errors.New("records.genders cannot be an empty list"))
	}
	if p.Records.Countries != nil && len(p.Records.Countries) == 0 {
		errs = append(errs, errors.New("records.countries cannot be an empty list"))
	}
	if p.Sentences.Count != nil && *p.Sentences.Count < 0 {
		errs = append(errs, fmt.Errorf("sentences.count cannot be negative: %d", *p.Sentences.Count))
	}
	if p.Sentences.WordCount < 0 {
		errs = append(errs, fmt.Errorf("sentences.word_count cannot be negative: %d", p.Sentences.WordCount))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidProfile}, errs...)...)
	}
	return nil
}

// RecordOptions converts the records section into generator options.
func (p *Profile) RecordOptions() []records.Option {
	opts := []records.Option{
		records.WithGenders(p.Records.Genders),
		records.WithCountries(p.Records.Countries),
	}
	if p.Records.Seed != nil {
		opts = append(opts, records.WithSeed(*p.Records.Seed))
	}
	return opts
}

// TemplaterOptions converts the sentences section into templater options.
func (p *Profile) TemplaterOptions() []underscore.Option {
	var opts []underscore.Option
	if p.Sentences.WordCount > 0 {
		opts = append(opts, underscore.WithWordCount(p.Sentences.WordCount))
	}
	if p.Sentences.Seed != nil {
		opts = append(opts, underscore.WithSeed(*p.Sentences.Seed))
	}
	return opts
}
