package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/Chatrawit/Meeting2/internal/logger"
)

// ErrImageNotFound is returned when the mirror has no file with the requested name.
var ErrImageNotFound = errors.New("image not found")

// LocalImageStore mirrors stored pictures into a directory on disk.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{dir: dir}
}

// Put writes data to dir/name, creating dir on first use.
func (s *LocalImageStore) Put(ctx context.Context, name string, data []byte) error {
	path, err := s.path(name)
	if err == nil {
		if err = os.MkdirAll(s.dir, 0o755); err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
	}

	logger.Log.Debugw("image store",
		"store", "local",
		"op", "put",
		"path", path,
		"size", len(data),
		"error", err,
	)

	return err
}

// Get reads dir/name.
func (s *LocalImageStore) Get(ctx context.Context, name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)

	logger.Log.Debugw("image store",
		"store", "local",
		"op", "get",
		"path", path,
		"size", len(data),
		"error", err,
	)

	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrImageNotFound
	}
	return data, err
}

// path rejects names that would escape the mirror directory.
func (s *LocalImageStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", errors.New("invalid image name")
	}
	return filepath.Join(s.dir, name), nil
}
