package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/domain/repository"
	"github.com/bnema/floatdesk/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/floatdesk/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openStore(t *testing.T) repository.LayoutStore {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "floatdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return sqlite.NewLayoutStore(db)
}

func TestLayoutStore_PutGetReplaceDelete(t *testing.T) {
	ctx := testCtx()
	store := openStore(t)
	key := repository.LayoutKey("default")

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got, "absent key reads as nil")

	require.NoError(t, store.Put(ctx, key, []byte(`{"version":1}`)))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1}`, string(got))

	require.NoError(t, store.Put(ctx, key, []byte(`{"version":2}`)))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2}`, string(got))

	require.NoError(t, store.Delete(ctx, key))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, store.Delete(ctx, key), "deleting a missing key is fine")
}

func TestLayoutStore_PutRejectsEmptyKey(t *testing.T) {
	store := openStore(t)
	assert.Error(t, store.Put(testCtx(), "", []byte("x")))
}

func TestLayoutStore_ListByPrefix(t *testing.T) {
	ctx := testCtx()
	store := openStore(t)

	require.NoError(t, store.Put(ctx, repository.LayoutKey("work"), []byte("w")))
	require.NoError(t, store.Put(ctx, repository.LayoutKey("default"), []byte("d")))
	require.NoError(t, store.Put(ctx, "prefs/theme", []byte("dark")))
	require.NoError(t, store.Put(ctx, "zzz", []byte("z")))

	values, err := store.List(ctx, repository.LayoutKeyPrefix)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "default", repository.SlotFromKey(values[0].Key))
	assert.Equal(t, "work", repository.SlotFromKey(values[1].Key))
	assert.Equal(t, []byte("d"), values[0].Value)
	assert.False(t, values[0].UpdatedAt.IsZero())

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestLayoutStore_SurvivesReopen(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "floatdesk.db")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewLayoutStore(db).Put(ctx, repository.LayoutKey("default"), []byte("kept")))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	got, err := sqlite.NewLayoutStore(db).Get(ctx, repository.LayoutKey("default"))
	require.NoError(t, err)
	assert.Equal(t, []byte("kept"), got)

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestLazyLayoutStore_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "lazy.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	store := sqlite.NewLazyLayoutStore(lazy)

	assert.False(t, lazy.IsInitialized())
	require.NoError(t, store.Put(ctx, repository.LayoutKey("default"), []byte("x")))
	assert.True(t, lazy.IsInitialized())

	values, err := store.List(ctx, repository.LayoutKeyPrefix)
	require.NoError(t, err)
	assert.Len(t, values, 1)
}

func TestLazyLayoutStore_PropagatesInitError(t *testing.T) {
	store := sqlite.NewLazyLayoutStore(sqlite.NewLazyDB(""))
	_, err := store.Get(testCtx(), repository.LayoutKey("default"))
	assert.Error(t, err)
}
