// Package storage persists the workout snapshot. Every backend keeps a single
// record: the whole state is loaded once at startup and rewritten on every
// change.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/megin/internal/config"
	"github.com/misterclayt0n/megin/internal/models"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("no saved state")

// ErrMalformed is returned by Load when the stored data cannot be decoded.
var ErrMalformed = errors.New("malformed saved state")

type Backend interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot) error
	Close() error
}

// Open builds the backend selected in the configuration.
func Open(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return NewFileBackend(cfg.Path), nil
	case config.BackendSQLite:
		return OpenSQLite(cfg.Path, cfg.Namespace)
	case config.BackendLibSQL:
		return OpenLibSQL(cfg.URL, cfg.AuthToken, cfg.Namespace)
	default:
		return nil, fmt.Errorf("Unknown storage backend %q", cfg.Backend)
	}
}
