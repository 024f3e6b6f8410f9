package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	n, err := store.Save("photo-1.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)

	r, err := store.Open("photo-1.jpg")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	r.Close()
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	require.NoError(t, store.Delete("photo-1.jpg"))
	_, err = store.Open("photo-1.jpg")
	assert.Error(t, err)
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("never-existed.jpg"))
}

func TestLocalStorage_RejectsTraversalKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape.jpg", "a/b.jpg", `a\b.jpg`} {
		_, err := store.Save(key, strings.NewReader("x"))
		assert.Error(t, err, "key %q", key)
	}
}
