// Package fsstore keeps uploaded project files in a local directory.
package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/studentworks/showcase/internal/core/domain"
)

// Store is a flat directory of files keyed by sanitized name.
type Store struct {
	dir string
}

// New returns a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes content to a temporary file and renames it over name, so
// readers never see a partial file. An existing file is replaced.
func (s *Store) Save(ctx context.Context, name string, content io.Reader) error {
	target, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}
	return nil
}

// Remove deletes name. A file that is already gone is not an error.
func (s *Store) Remove(_ context.Context, name string) error {
	target, err := s.Path(name)
	if err != nil {
		return nil
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// Path resolves name inside the upload directory. Names that would not
// survive sanitization unchanged are rejected with domain.ErrNotFound.
func (s *Store) Path(name string) (string, error) {
	if name == "" || domain.SanitizeFilename(name) != name {
		return "", fmt.Errorf("%q: %w", name, domain.ErrNotFound)
	}
	return filepath.Join(s.dir, name), nil
}
