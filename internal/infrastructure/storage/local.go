package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	domainerrors "github.com/rafabene/gravegrounds-backend/internal/domain/errors"
)

// LocalStore grava as imagens num diretório servido em /uploads
type LocalStore struct {
	dir       string
	publicURL string
}

// NewLocalStore cria o diretório se necessário
func NewLocalStore(dir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, publicURL: publicURL}, nil
}

func (s *LocalStore) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	key := objectKey(name)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close() //nolint:errcheck
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, key)); err != nil {
		return "", err
	}
	return key, nil
}

func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	p, err := s.path(key)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) URL(key string) string {
	return joinURL(s.publicURL, key)
}

// path recusa chaves que escapariam do diretório
func (s *LocalStore) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid blob key %q: %w", key, domainerrors.ErrForbidden)
	}
	return filepath.Join(s.dir, key), nil
}
