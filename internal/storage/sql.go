package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/misterclayt0n/megin/internal/models"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// SQLBackend stores the snapshot as a JSON document in one row of app_state,
// keyed by namespace.
type SQLBackend struct {
	db        *sql.DB
	namespace string
}

// OpenSQLite opens (and creates if needed) a local SQLite database file.
func OpenSQLite(path, namespace string) (*SQLBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("Failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	return NewSQLBackend(db, namespace)
}

// OpenLibSQL connects to a remote libsql (Turso) database.
func OpenLibSQL(dbURL, authToken, namespace string) (*SQLBackend, error) {
	if dbURL == "" {
		return nil, errors.New("libsql backend needs a database url (TURSO_DATABASE_URL)")
	}

	if authToken != "" {
		u, err := url.Parse(dbURL)
		if err != nil {
			return nil, fmt.Errorf("Invalid database url: %w", err)
		}
		q := u.Query()
		q.Set("authToken", authToken)
		u.RawQuery = q.Encode()
		dbURL = u.String()
	}

	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		return nil, fmt.Errorf("Failed to open libsql db: %w", err)
	}

	return NewSQLBackend(db, namespace)
}

// NewSQLBackend wraps an open database and makes sure the table exists.
func NewSQLBackend(db *sql.DB, namespace string) (*SQLBackend, error) {
	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}
	return &SQLBackend{db: db, namespace: namespace}, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS app_state (
            namespace TEXT PRIMARY KEY,
            payload TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (b *SQLBackend) Load(ctx context.Context) (*models.Snapshot, error) {
	var payload string
	err := b.db.QueryRowContext(ctx,
		`SELECT payload FROM app_state WHERE namespace = ?`,
		b.namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to read state: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &snap, nil
}

func (b *SQLBackend) Save(ctx context.Context, snap *models.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("Failed to encode state: %w", err)
	}

	_, err = b.db.ExecContext(ctx,
		`INSERT INTO app_state (namespace, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		b.namespace,
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to save state: %w", err)
	}
	return nil
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}
