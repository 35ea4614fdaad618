package storage

import (
	"context"
	"io"
)

// Store writes and reads files of an exported site.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
