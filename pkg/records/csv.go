package records

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/datakit/pkg/storage"
)

// Content types used when saving to a storage backend.
const (
	ContentTypeCSV     = "text/csv"
	ContentTypeParquet = "application/vnd.apache.parquet"
)

// WriteCSV writes the header followed by max(n, 0) rows.
// Arguments are validated before anything is written.
func (g *Generator) WriteCSV(w io.Writer, n int) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := g.check(n); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	for range max(n, 0) {
		if err := cw.Write(g.next().Strings()); err != nil {
			return errors.Join(ErrFailedToWrite, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}

// WriteFile creates or truncates the file at path, writes n records as CSV
// and returns path. A partially written file is removed on failure.
func WriteFile(path string, n int, opts ...Option) (string, error) {
	g := New(opts...)
	if err := g.check(n); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Join(ErrFailedToCreateFile, err)
	}

	if err := g.WriteCSV(f, n); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", errors.Join(ErrFailedToWrite, err)
	}

	return path, nil
}

// Save renders n records as CSV and stores them under path in s.
// It returns the path reported by the backend.
func Save(ctx context.Context, s storage.Storage, path string, n int, opts ...Option) (string, error) {
	return save(ctx, s, path, ContentTypeCSV, n, (*Generator).WriteCSV, opts)
}

// SaveParquet is Save with Parquet encoding.
func SaveParquet(ctx context.Context, s storage.Storage, path string, n int, opts ...Option) (string, error) {
	return save(ctx, s, path, ContentTypeParquet, n, (*Generator).WriteParquet, opts)
}

func save(
	ctx context.Context,
	s storage.Storage,
	path, contentType string,
	n int,
	render func(*Generator, io.Writer, int) error,
	opts []Option,
) (string, error) {
	if s == nil {
		return "", ErrNilStorage
	}

	var buf bytes.Buffer
	if err := render(New(opts...), &buf, n); err != nil {
		return "", err
	}

	obj, err := s.Put(ctx, path, &buf, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToSave, err)
	}
	return obj.Path, nil
}
