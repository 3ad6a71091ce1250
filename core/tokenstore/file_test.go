package tokenstore_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcticwolves/clubkit/core/tokenstore"
)

var testSecret = bytes.Repeat([]byte("s"), 32)

func newFileStore(t *testing.T) (*tokenstore.File, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "token")
	store, err := tokenstore.NewFile(path, testSecret)
	require.NoError(t, err)
	return store, path
}

func TestNewFile_ShortSecret(t *testing.T) {
	t.Parallel()

	_, err := tokenstore.NewFile("/tmp/token", []byte("too-short"))
	assert.ErrorIs(t, err, tokenstore.ErrInvalidSecret)
}

func TestFile_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := newFileStore(t)

	require.NoError(t, store.Set(ctx, "wolfpack-api-key"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wolfpack-api-key", token)

	// Token must not be stored in plaintext.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "wolfpack-api-key")
}

func TestFile_GetMissing(t *testing.T) {
	t.Parallel()

	store, _ := newFileStore(t)

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, tokenstore.ErrNotFound)
}

func TestFile_Overwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newFileStore(t)

	require.NoError(t, store.Set(ctx, "first"))
	require.NoError(t, store.Set(ctx, "second"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestFile_DeleteIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := newFileStore(t)

	require.NoError(t, store.Set(ctx, "token"))
	require.NoError(t, store.Delete(ctx))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, store.Delete(ctx))
}

func TestFile_SecretRotationInvalidatesToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")

	store, err := tokenstore.NewFile(path, testSecret)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "token"))

	rotated, err := tokenstore.NewFile(path, bytes.Repeat([]byte("x"), 32))
	require.NoError(t, err)

	_, err = rotated.Get(ctx)
	assert.ErrorIs(t, err, tokenstore.ErrDecryptToken)
}

func TestFile_CorruptedFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := newFileStore(t)

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, tokenstore.ErrDecryptToken)
}

func TestFile_CreatesParentDirs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	store, err := tokenstore.NewFile(path, testSecret)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "token"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}
