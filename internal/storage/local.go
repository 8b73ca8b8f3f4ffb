package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes avatars under a directory that the server exposes
// as static files.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Put(
	ctx context.Context,
	key string,
	r io.Reader,
	contentType string,
) (string, error) {

	// key is server-generated, but never trust it as a path.
	name := filepath.Base(key)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write avatar file: %w", err)
	}

	return name, nil
}
