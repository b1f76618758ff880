package repository

import (
	"encoding/json"
	"sync"
)

// SessionStore is the session-scoped string-keyed storage used by the mock
// backend. Each collection is kept as one serialized blob under one slot;
// there is no atomicity guarantee beyond a single Set.
//
// The store is constructed once at wiring time and passed to every mock
// repository, never reached through package globals.
type SessionStore interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
	Clear()
}

// MemorySessionStore is the in-process SessionStore. The mutex only makes
// individual Get/Set calls safe; read-modify-write sequences are serialized
// by the repositories that own the slots.
type MemorySessionStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

var _ SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{slots: make(map[string]string)}
}

func (s *MemorySessionStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok
}

func (s *MemorySessionStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
}

func (s *MemorySessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = make(map[string]string)
}

// loadRecords deserializes a whole collection blob. A missing slot is an
// empty collection.
func loadRecords[T any](store SessionStore, key string) ([]T, error) {
	raw, ok := store.Get(key)
	if !ok || raw == "" {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// saveRecords rewrites the whole collection blob.
func saveRecords[T any](store SessionStore, key string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	store.Set(key, string(raw))
	return nil
}
