package kvstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type fileStore struct {
	dir string
}

// NewFile returns a Store that keeps each key in its own file under dir.
// The directory is created on first use.
func NewFile(dir string) Store {
	return &fileStore{dir: dir}
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *fileStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never leaves a truncated value.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *fileStore) path(key string) string {
	safe := strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
