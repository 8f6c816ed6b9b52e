package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlobStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	require.NoError(t, store.Store(ctx, "documentTemplates", []byte(`[]`)))
	got, err := store.Load(ctx, "documentTemplates")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Store(ctx, "documentTemplates", []byte(`[{"id":"1"}]`)))
	got, err = store.Load(ctx, "documentTemplates")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)

	// stored values do not alias the caller's buffer
	buf := []byte("abc")
	require.NoError(t, store.Store(ctx, "other", buf))
	buf[0] = 'x'
	got, err = store.Load(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestMemory(t *testing.T) {
	testBlobStore(t, NewMemory())
}

func TestBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "docdesk.bolt")
	store, err := NewBolt(path)
	require.NoError(t, err)
	testBlobStore(t, store)
	require.NoError(t, store.Close())

	// values survive reopening
	store, err = NewBolt(path)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.Load(context.Background(), "documentTemplates")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)
}

func TestSQLite(t *testing.T) {
	store, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "docdesk.db"))
	require.NoError(t, err)
	defer store.Close()
	testBlobStore(t, store)
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("DOCDESK_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("DOCDESK_TEST_DATABASE_URL not set")
	}
	store, err := Open(context.Background(), DriverPostgres, dsn)
	require.NoError(t, err)
	defer store.Close()
	testBlobStore(t, store)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "redis", "")
	assert.True(t, errors.Is(err, ErrUnknownDriver))
}

func TestOpenMemory(t *testing.T) {
	store, err := Open(context.Background(), DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, store)
}
