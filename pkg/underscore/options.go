package underscore

import (
	"math/rand"
)

// DefaultWordCount is the number of words per sentence.
const DefaultWordCount = 10

// Option configures a Templater.
type Option func(*config)

type config struct {
	wordCount int
	seed      *int64
	rnd       *rand.Rand
}

// WithSeed makes sentence generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = &seed
	}
}

// WithRand injects a random source. It takes precedence over WithSeed.
func WithRand(rnd *rand.Rand) Option {
	return func(c *config) {
		c.rnd = rnd
	}
}

// WithWordCount overrides the number of words sampled per sentence.
func WithWordCount(n int) Option {
	return func(c *config) {
		c.wordCount = n
	}
}

func (c *config) source() *rand.Rand {
	switch {
	case c.rnd != nil:
		return c.rnd
	case c.seed != nil:
		return rand.New(rand.NewSource(*c.seed))
	default:
		return rand.New(rand.NewSource(rand.Int63()))
	}
}
