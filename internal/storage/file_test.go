package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/megin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_NotFound(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "state.toml"))

	_, err := b.Load(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackend_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")
	b := NewFileBackend(path)
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, sampleSnapshot()))
	assert.FileExists(t, path)

	got, err := b.Load(ctx)
	require.NoError(t, err)
	requireSameSnapshot(t, sampleSnapshot(), got)

	// Overwrite leaves no temp files behind.
	require.NoError(t, b.Save(ctx, sampleSnapshot()))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileBackend_KeysDaysByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	b := NewFileBackend(path)
	ctx := context.Background()

	snap := sampleSnapshot()
	snap.Days[models.Friday] = nil
	require.NotPanics(t, func() {
		require.NoError(t, b.Save(ctx, snap))
	})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[days.monday")
	assert.Contains(t, string(data), "[days.wednesday")
	assert.NotContains(t, string(data), "[days.friday")

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Days, 2)
	assert.True(t, got.Days[models.Monday].Checked["mon-ex1"])
}

func TestFileBackend_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("days = [[[ not toml"), 0644))

	_, err := NewFileBackend(path).Load(context.Background())

	assert.ErrorIs(t, err, ErrMalformed)
}
