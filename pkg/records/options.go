package records

import (
	"math/rand"
	"slices"
)

var (
	// DefaultGenders is used when WithGenders is not given.
	DefaultGenders = []string{"Male", "Female", "Non-Binary"}

	// DefaultCountries is used when WithCountries is not given.
	DefaultCountries = []string{"USA", "UK", "Canada", "Australia", "India"}
)

// Option configures a Generator.
type Option func(*config)

type config struct {
	genders   []string
	countries []string
	seed      *int64
	rnd       *rand.Rand
}

func defaultConfig() *config {
	return &config{
		genders:   DefaultGenders,
		countries: DefaultCountries,
	}
}

// WithSeed makes the generated sequence reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = &seed
	}
}

// WithGenders replaces the gender label set. Nil keeps the defaults,
// an empty non-nil slice is kept and rejected once rows are requested.
func WithGenders(labels []string) Option {
	return func(c *config) {
		if labels != nil {
			c.genders = slices.Clone(labels)
		}
	}
}

// WithCountries replaces the country label set. Same nil semantics as WithGenders.
func WithCountries(labels []string) Option {
	return func(c *config) {
		if labels != nil {
			c.countries = slices.Clone(labels)
		}
	}
}

// WithRand injects a random source. It takes precedence over WithSeed.
func WithRand(rnd *rand.Rand) Option {
	return func(c *config) {
		c.rnd = rnd
	}
}

func (c *config) source() *rand.Rand {
	switch {
	case c.rnd != nil:
		return c.rnd
	case c.seed != nil:
		return rand.New(rand.NewSource(*c.seed))
	default:
		// The global source is randomly seeded and safe for concurrent use.
		return rand.New(rand.NewSource(rand.Int63()))
	}
}
