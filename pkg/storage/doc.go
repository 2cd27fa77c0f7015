// Package storage is the sink layer for generated datasets.
//
// It exposes a single Storage interface with two backends:
//
//   - LocalStorage writes below a base directory and rejects any path that
//     would escape it.
//   - S3Storage writes to Amazon S3 or any S3-compatible service (MinIO,
//     R2, ...) through aws-sdk-go-v2.
//
// Both accept an io.Reader, so callers can stream CSV or Parquet output
// without knowing where it ends up.
//
// # Usage
//
//	store, err := storage.NewLocalStorage("./out", "/files/")
//	if err != nil {
//		return err
//	}
//	obj, err := store.Put(ctx, storage.NewKey("records", ".csv"), r, "text/csv")
//
// For S3:
//
//	store, err := storage.NewS3Storage(ctx, storage.S3Config{
//		Bucket: "datasets",
//		Region: "eu-central-1",
//	})
//
// # Errors
//
// Backend failures are mapped to the sentinel errors in errors.go, so
// callers can use errors.Is regardless of the backend in use.
package storage
