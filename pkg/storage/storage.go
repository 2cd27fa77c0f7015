package storage

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Object describes a stored blob.
type Object struct {
	Path         string // Backend-relative path or key
	AbsolutePath string // Local backends only
	Size         int64
	ContentType  string
}

// Storage is implemented by every sink backend.
type Storage interface {
	// Put stores everything read from r under path, replacing any existing object.
	Put(ctx context.Context, path string, r io.Reader, contentType string) (*Object, error)
	// Delete removes a single object.
	Delete(ctx context.Context, path string) error
	// Exists reports whether an object exists at path.
	Exists(ctx context.Context, path string) bool
	// URL returns the public URL for path.
	URL(path string) string
}

// NewKey returns a unique object name such as "records-<uuid>.csv".
func NewKey(prefix, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if prefix == "" {
		return uuid.NewString() + ext
	}
	return prefix + "-" + uuid.NewString() + ext
}

// datasetTypes covers extensions missing from the stdlib mime table.
var datasetTypes = map[string]string{
	".csv":     "text/csv",
	".parquet": "application/vnd.apache.parquet",
	".jsonl":   "application/jsonl",
}

// contentTypeFor falls back to the extension when the caller passes none.
func contentTypeFor(path, contentType string) string {
	if contentType != "" {
		return contentType
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := datasetTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
