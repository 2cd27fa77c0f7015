package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix  string
	dotenv  []string
	environ map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "DATAKIT_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithDotenv replaces the default ".env" with the given files.
// Passing no paths disables dotenv loading.
func WithDotenv(paths ...string) Option {
	return func(o *options) {
		o.dotenv = paths
	}
}

// WithEnvironment parses from the given map instead of the process
// environment. Dotenv files are not loaded in that case.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// Load populates v from dotenv files and the environment.
//
// Example:
//
//	type StorageConfig struct {
//		Driver string `env:"STORAGE_DRIVER" envDefault:"local"`
//		Dir    string `env:"STORAGE_DIR" envDefault:"./out"`
//	}
//
//	var cfg StorageConfig
//	err := config.Load(&cfg, config.WithPrefix("DATAKIT_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{dotenv: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	if o.environ == nil {
		for _, path := range o.dotenv {
			// Missing files are fine, a broken one is not.
			if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s: %w", ErrLoadingDotenv, path, err)
			}
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environ != nil {
		envOpts.Environment = o.environ
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
