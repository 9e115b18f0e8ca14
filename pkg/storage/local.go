package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes uploads to a directory served statically at
// /uploads. Default backend.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(key string, reader io.Reader) (string, error) {
	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

func (s *LocalStorage) Delete(key string) error {
	return os.Remove(filepath.Join(s.dir, key))
}
