package storage

import "io"

// PhotoStore abstracts where damage photo bytes live so the service layer
// does not care whether the backend is a local directory or a cloud bucket.
type PhotoStore interface {
	// Save writes the file under key and returns the number of bytes written.
	Save(key string, reader io.Reader) (int64, error)

	// Open returns a reader for the stored file.
	Open(key string) (io.ReadCloser, error)

	// Delete removes the stored file. Missing files are not an error.
	Delete(key string) error
}
