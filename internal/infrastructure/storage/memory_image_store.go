package storage

import (
	"context"
	"fmt"
	"sync"

	"ssx_solar/internal/usecase/interfaces"
)

// MemoryImageStore is the offline-development substitute for blob storage.
// It keeps the bytes in memory and fabricates stable mock URLs with the same
// path shape the real store uses.

type MemoryImageStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

var _ interfaces.IImageStore = (*MemoryImageStore)(nil)

func NewMemoryImageStore() *MemoryImageStore {
	return &MemoryImageStore{blobs: make(map[string][]byte)}
}

func (s *MemoryImageStore) Upload(_ context.Context, requestID, filename string, data []byte) (string, error) {
	key := fmt.Sprintf("serviceRequests/%s/%s", requestID, filename)

	s.mu.Lock()
	s.blobs[key] = append([]byte(nil), data...)
	s.mu.Unlock()

	return "mock://storage/" + key, nil
}

// Get returns a stored blob; tests use it to check round-trips.
func (s *MemoryImageStore) Get(requestID, filename string) ([]byte, bool) {
	key := fmt.Sprintf("serviceRequests/%s/%s", requestID, filename)

	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	return data, ok
}
