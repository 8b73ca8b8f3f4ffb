package storage

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidImage marks uploads that do not decode as a supported
// image format.
var ErrInvalidImage = errors.New("invalid image")

// AvatarStore persists avatar blobs and returns the reference under
// which they were stored.
type AvatarStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}
