package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	t.Parallel()

	newStore := func(t *testing.T) *LocalStorage {
		t.Helper()
		store, err := NewLocalStorage(t.TempDir(), "/api/files")
		require.NoError(t, err)
		return store
	}

	t.Run("save then exists and delete", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		ctx := context.Background()

		err := store.Save(ctx, "resumes/u1/file.pdf", strings.NewReader("content"), 7, "application/pdf")
		require.NoError(t, err)

		exists, err := store.Exists(ctx, "resumes/u1/file.pdf")
		require.NoError(t, err)
		assert.True(t, exists)

		data, err := os.ReadFile(filepath.Join(store.BasePath(), "resumes", "u1", "file.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))

		require.NoError(t, store.Delete(ctx, "resumes/u1/file.pdf"))
		exists, err = store.Exists(ctx, "resumes/u1/file.pdf")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete of a missing key is a no-op", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		assert.NoError(t, store.Delete(context.Background(), "missing.pdf"))
	})

	t.Run("url joins base and key", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		assert.Equal(t, "/api/files/resumes/u1/file.pdf", store.GetURL("resumes/u1/file.pdf"))

		signed, err := store.GetSignedURL("resumes/u1/file.pdf", 0)
		require.NoError(t, err)
		assert.Equal(t, store.GetURL("resumes/u1/file.pdf"), signed)
	})

	t.Run("traversal in keys stays inside the base dir", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		ctx := context.Background()

		err := store.Save(ctx, "../../escape.txt", strings.NewReader("x"), 1, "text/plain")
		require.NoError(t, err)

		// The file must land inside the base dir, not above it.
		_, statErr := os.Stat(filepath.Join(store.BasePath(), "escape.txt"))
		assert.NoError(t, statErr)
	})
}
