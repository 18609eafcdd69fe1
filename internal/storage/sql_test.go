package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/misterclayt0n/megin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	return db
}

func newTestSQLBackend(t *testing.T, db *sql.DB, namespace string) *SQLBackend {
	t.Helper()

	b, err := NewSQLBackend(db, namespace)
	require.NoError(t, err)
	return b
}

func TestSQLBackend_NotFound(t *testing.T) {
	db := setupTestDB(t)
	b := newTestSQLBackend(t, db, "test")
	t.Cleanup(func() { b.Close() })

	_, err := b.Load(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLBackend_SaveAndLoad(t *testing.T) {
	db := setupTestDB(t)
	b := newTestSQLBackend(t, db, "test")
	t.Cleanup(func() { b.Close() })
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, sampleSnapshot()))
	got, err := b.Load(ctx)
	require.NoError(t, err)
	requireSameSnapshot(t, sampleSnapshot(), got)

	// Second save updates the same row.
	updated := sampleSnapshot()
	updated.Days[models.Monday].Checked["mon-ex5"] = true
	require.NoError(t, b.Save(ctx, updated))

	got, err = b.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Days[models.Monday].Checked["mon-ex5"])

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM app_state`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSQLBackend_Namespaces(t *testing.T) {
	db := setupTestDB(t)
	a := newTestSQLBackend(t, db, "alice")
	b := newTestSQLBackend(t, db, "bob")
	t.Cleanup(func() { a.Close() })
	ctx := context.Background()

	require.NoError(t, a.Save(ctx, sampleSnapshot()))

	_, err := b.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLBackend_Malformed(t *testing.T) {
	db := setupTestDB(t)
	b := newTestSQLBackend(t, db, "test")
	t.Cleanup(func() { b.Close() })

	_, err := db.Exec(`INSERT INTO app_state (namespace, payload, updated_at) VALUES ('test', '{not json', '')`)
	require.NoError(t, err)

	_, err = b.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestOpenLibSQL_NeedsURL(t *testing.T) {
	_, err := OpenLibSQL("", "token", "test")

	assert.ErrorContains(t, err, "needs a database url")
}
