package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datakit/pkg/config"
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/storage"
)

type runIDKey struct{}

// app carries what every subcommand needs once the root has run.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// environ replaces the process environment when set.
	environ map[string]string
	// storage overrides the configured backend when set.
	storage storage.Storage

	cfg Config
	log *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "datakit",
		Short: "Generate synthetic datasets and text fixtures",
		Long: `datakit generates reproducible synthetic data.

Commands:
  records     CSV or Parquet person records (Name, Age, Gender, Country)
  sentences   Random sentences with target phrases joined by underscores
  strings     Random lowercase strings of varying length
  menu        Frequency table of menu items from order lists
  hash        Salted SHA-256 of a hex payload
  triples     Three letter combinations and first letter frequencies
  stats       Mean and population variance of nested numbers

Environment Variables:
  DATAKIT_ENV                       development, staging or production
  DATAKIT_LOG_LEVEL                 debug, info, warn, error
  DATAKIT_LOG_FORMAT                json or text
  DATAKIT_STORAGE_DRIVER            local (default) or s3
  DATAKIT_STORAGE_DIR               base directory for the local driver
  DATAKIT_STORAGE_WRITE_TIMEOUT     per-file write limit, e.g. 30s
  DATAKIT_STORAGE_S3_BUCKET         bucket for the s3 driver
  DATAKIT_STORAGE_S3_REGION         region (default us-east-1)
  DATAKIT_STORAGE_S3_ENDPOINT       endpoint for S3-compatible services
  DATAKIT_STORAGE_S3_FORCE_PATH_STYLE  path-style addressing (MinIO)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		newRecordsCmd(a),
		newSentencesCmd(a),
		newStringsCmd(a),
		newMenuCmd(a),
		newHashCmd(a),
		newTriplesCmd(a),
		newStatsCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	var opts []config.Option
	opts = append(opts, config.WithPrefix(envPrefix))
	if a.environ != nil {
		opts = append(opts, config.WithEnvironment(a.environ))
	}
	if err := config.Load(&a.cfg, opts...); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, "datakit"),
		logger.WithOutput(a.stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	}
	if a.cfg.LogLevel != "" {
		level, err := logger.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if a.cfg.LogFormat != "" {
		format, err := logger.ParseFormat(a.cfg.LogFormat)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	a.log = logger.New(logOpts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, runIDKey{}, uuid.NewString()))
	return nil
}

func (a *app) backend(ctx context.Context) (storage.Storage, error) {
	if a.storage != nil {
		return a.storage, nil
	}
	return newStorage(ctx, a.cfg.Storage)
}
