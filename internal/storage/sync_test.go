package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	src := NewFileBackend(filepath.Join(dir, "src.toml"))
	require.NoError(t, src.Save(ctx, sampleSnapshot()))

	dump := filepath.Join(dir, "dump.toml")
	require.NoError(t, Export(ctx, src, dump))
	assert.FileExists(t, dump)

	db := setupTestDB(t)
	dst := newTestSQLBackend(t, db, "imported")
	t.Cleanup(func() { dst.Close() })

	snap, err := Import(ctx, dst, dump)
	require.NoError(t, err)
	requireSameSnapshot(t, sampleSnapshot(), snap)

	got, err := dst.Load(ctx)
	require.NoError(t, err)
	requireSameSnapshot(t, sampleSnapshot(), got)
}

func TestExport_NothingSaved(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(filepath.Join(dir, "state.toml"))

	err := Export(context.Background(), b, filepath.Join(dir, "dump.toml"))

	assert.ErrorContains(t, err, "Nothing to export yet")
	assert.NoFileExists(t, filepath.Join(dir, "dump.toml"))
}

func TestImport_Invalid(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	b := NewFileBackend(filepath.Join(dir, "state.toml"))

	_, err := Import(ctx, b, filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "Reading file")

	badDay := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badDay, []byte("[days.sunday]\n"), 0644))
	_, err = Import(ctx, b, badDay)
	assert.ErrorContains(t, err, `unknown day "sunday"`)

	_, err = b.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound, "nothing is saved on failure")
}
