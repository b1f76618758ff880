package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryImageStore_Upload(t *testing.T) {
	store := NewMemoryImageStore()

	url, err := store.Upload(context.Background(), "req-1", "before.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "mock://storage/serviceRequests/req-1/before.jpg", url)

	data, ok := store.Get("req-1", "before.jpg")
	require.True(t, ok)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestMemoryImageStore_UploadCopiesData(t *testing.T) {
	store := NewMemoryImageStore()

	payload := []byte("original")
	_, err := store.Upload(context.Background(), "req-1", "x.jpg", payload)
	require.NoError(t, err)

	payload[0] = 'X'
	data, ok := store.Get("req-1", "x.jpg")
	require.True(t, ok)
	assert.Equal(t, []byte("original"), data)
}

func TestMemoryImageStore_GetUnknown(t *testing.T) {
	store := NewMemoryImageStore()

	_, ok := store.Get("req-1", "missing.jpg")
	assert.False(t, ok)
}
