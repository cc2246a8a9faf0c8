package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingIsNotFresh(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "cache.json"))

	fresh, err := s.Fresh(context.Background())
	require.NoError(t, err)
	assert.False(t, fresh)

	_, err = s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStoreSaveThenFresh(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(ctx, []byte(`{"items":[]}`)))

	fresh, err := s.Fresh(ctx)
	require.NoError(t, err)
	assert.True(t, fresh)

	b, err := s.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFileStoreStaleAfterTTL(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(ctx, []byte(`{}`)))

	old := time.Now().Add(-31 * time.Minute)
	require.NoError(t, os.Chtimes(path, old, old))

	fresh, err := s.Fresh(ctx)
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestFileStoreTTLBoundary(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	mtime := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	now := mtime.Add(30*time.Minute - time.Second)
	s := NewFileStore(path, WithClock(func() time.Time { return now }))
	fresh, err := s.Fresh(ctx)
	require.NoError(t, err)
	assert.True(t, fresh)

	now = mtime.Add(30 * time.Minute)
	fresh, err = s.Fresh(ctx)
	require.NoError(t, err)
	assert.False(t, fresh, "age equal to the TTL is stale")
}

func TestFileStoreSaveReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "cache.json"))

	require.NoError(t, s.Save(ctx, []byte(`{"fecha_actualizacion":"2026-10-13","items":[{"label":"a"},{"label":"b"}]}`)))
	require.NoError(t, s.Save(ctx, []byte(`{"fecha_actualizacion":"2026-10-14","items":[]}`)))

	b, err := s.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha_actualizacion":"2026-10-14","items":[]}`, string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "var", "sade", "cache.json")
	s := NewFileStore(path, WithFileTTL(time.Minute))

	require.NoError(t, s.Save(context.Background(), []byte(`{}`)))
	assert.FileExists(t, path)
	assert.Equal(t, path, s.Path())
}
