// Package config loads typed configuration from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// dotenv files are loaded first (missing files are skipped, existing process
// variables are never overridden), then the environment is parsed into a
// struct using `env` field tags.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Bucket   string `env:"S3_BUCKET"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("DATAKIT_")); err != nil {
//		return err
//	}
//
// # Error Handling
//
//   - ErrNilPointer    nil pointer passed to Load.
//   - ErrLoadingDotenv an existing dotenv file could not be read or parsed.
//   - ErrParsingConfig env vars could not be parsed into the struct.
package config
