package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Command records the CLI subcommand under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Rows records the number of generated rows or items under the key "rows".
func Rows(n int) slog.Attr {
	return slog.Int("rows", n)
}

// Seed records the RNG seed under the key "seed".
// A nil seed means the run was not reproducible and yields an empty Attr.
func Seed(seed *int64) slog.Attr {
	if seed == nil {
		return slog.Attr{}
	}
	return slog.Int64("seed", *seed)
}

// Destination records where output went under the key "destination".
func Destination(path string) slog.Attr {
	return slog.String("destination", path)
}

// OutputFormat records the output encoding under the key "format".
func OutputFormat(format string) slog.Attr {
	return slog.String("format", format)
}

// Duration records the elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
