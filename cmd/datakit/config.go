package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/datakit/pkg/storage"
)

const envPrefix = "DATAKIT_"

// Config is read from DATAKIT_* variables and an optional .env file.
type Config struct {
	Env       string        `env:"ENV" envDefault:"development"`
	LogLevel  string        `env:"LOG_LEVEL"`
	LogFormat string        `env:"LOG_FORMAT"`
	Storage   StorageConfig `envPrefix:"STORAGE_"`
}

type StorageConfig struct {
	Driver  string   `env:"DRIVER" envDefault:"local"`
	Dir     string   `env:"DIR" envDefault:"."`
	BaseURL string   `env:"BASE_URL"`
	S3      S3Config `envPrefix:"S3_"`

	// WriteTimeout bounds each Put; zero means no limit.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`
}

type S3Config struct {
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	Endpoint       string `env:"ENDPOINT"`
	BaseURL        string `env:"BASE_URL"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE"`
}

const (
	driverLocal = "local"
	driverS3    = "s3"
)

func newStorage(ctx context.Context, cfg StorageConfig) (storage.Storage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", driverLocal:
		return storage.NewLocalStorage(cfg.Dir, cfg.BaseURL,
			storage.WithLocalWriteTimeout(cfg.WriteTimeout),
		)
	case driverS3:
		return storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:         cfg.S3.Bucket,
			Region:         cfg.S3.Region,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			BaseURL:        cfg.S3.BaseURL,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		}, storage.WithS3WriteTimeout(cfg.WriteTimeout))
	}
	return nil, fmt.Errorf("%w: unknown storage driver %q", storage.ErrInvalidConfig, cfg.Driver)
}
