package randstr

import "math/rand"

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// Option configures Generate.
type Option func(*config)

type config struct {
	seed    *int64
	rnd     *rand.Rand
	charset string
}

// WithSeed makes the output reproducible.
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

// WithCharset replaces the lowercase alphabet. Empty values are ignored.
func WithCharset(charset string) Option {
	return func(c *config) {
		if charset != "" {
			c.charset = charset
		}
	}
}

// Generate returns max(n, 0) strings whose lengths are uniform in [1, maxLength].
func Generate(maxLength, n int, opts ...Option) ([]string, error) {
	if maxLength < 1 {
		return nil, ErrInvalidMaxLength
	}

	cfg := &config{charset: lowercase}
	for _, opt := range opts {
		opt(cfg)
	}

	rnd := cfg.rnd
	switch {
	case rnd != nil:
	case cfg.seed != nil:
		rnd = rand.New(rand.NewSource(*cfg.seed))
	default:
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}

	out := make([]string, 0, max(n, 0))
	for range max(n, 0) {
		b := make([]byte, 1+rnd.Intn(maxLength))
		for i := range b {
			b[i] = cfg.charset[rnd.Intn(len(cfg.charset))]
		}
		out = append(out, string(b))
	}
	return out, nil
}
