package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storehub-server/internal/config"
	"storehub-server/internal/infrastructure/storage"
)

func pngPayload() []byte {
	return []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
}

func newLocal(t *testing.T) (*storage.LocalStorage, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalStorage(&config.Config{
		LocalStoragePath:    root,
		LocalStorageBaseURL: "http://localhost:8080/media",
	}, zerolog.Nop())
	require.NoError(t, err)
	return store, root
}

func TestLocalStorageUploadWritesBlob(t *testing.T) {
	store, root := newLocal(t)

	result, err := store.Upload(context.Background(), pngPayload(), "product_main_image")
	require.NoError(t, err)

	assert.Equal(t, "image/png", result.Format)
	assert.Equal(t, int64(len(pngPayload())), result.Bytes)
	assert.Contains(t, result.Location, "http://localhost:8080/media/product_main_image/")

	entries, err := os.ReadDir(filepath.Join(root, "product_main_image"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))
}

func TestLocalStorageDeleteRemovesBlob(t *testing.T) {
	store, root := newLocal(t)

	result, err := store.Upload(context.Background(), pngPayload(), "user_image")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), result.Location))

	entries, err := os.ReadDir(filepath.Join(root, "user_image"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStorageDeleteMissingBlobIsNoop(t *testing.T) {
	store, _ := newLocal(t)

	err := store.Delete(context.Background(), "http://localhost:8080/media/user_image/blob_gone.png")
	require.NoError(t, err)

	// A second delete of the same location stays a no-op.
	require.NoError(t, store.Delete(context.Background(), "http://localhost:8080/media/user_image/blob_gone.png"))
}

func TestLocalStorageRequiresRoot(t *testing.T) {
	_, err := storage.NewLocalStorage(&config.Config{}, zerolog.Nop())
	require.Error(t, err)
}
