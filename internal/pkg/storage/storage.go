package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when no file is published under the
// requested path.
var ErrNotFound = errors.New("file not found")

// FileStorage is the output location export archives are published to.
type FileStorage interface {
	// Publish atomically writes a file: the content only becomes visible
	// under path on full success, replacing any prior file with that path.
	Publish(ctx context.Context, path string, content io.Reader) (string, error)

	// Open retrieves a published file. Returns ErrNotFound when nothing is
	// published under path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// URL returns the public URL of a published file
	URL(path string) string
}
