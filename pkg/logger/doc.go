// Package logger builds log/slog loggers from functional options.
//
// The default logger writes JSON at info level to stderr, so generated data
// written to stdout stays clean:
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("DATAKIT_ENV"), "datakit"),
//		logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "records written",
//		logger.Rows(1000),
//		logger.Destination("out/records.csv"),
//	)
//
// ParseLevel and ParseFormat turn configuration strings into options values.
// WithFormat panics on unknown formats; validate user input with ParseFormat
// first.
package logger
