package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/misterclayt0n/megin/internal/models"
)

// FileBackend keeps the snapshot in a single TOML file.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) Path() string {
	return f.path
}

func (f *FileBackend) Load(ctx context.Context) (*models.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to read state file: %w", err)
	}

	snap, err := decodeTOML(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, f.path, err)
	}
	return snap, nil
}

// Save writes to a temporary file first so a failed write never leaves a
// truncated state file behind.
func (f *FileBackend) Save(ctx context.Context, snap *models.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("Failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("Failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeTOML(tmp, snap); err != nil {
		tmp.Close()
		return fmt.Errorf("Failed to encode state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("Failed to write state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("Failed to replace state file: %w", err)
	}
	return nil
}

func (f *FileBackend) Close() error {
	return nil
}
