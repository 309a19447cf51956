package store

import (
	"context"
	"encoding/json"
	"sync"

	"texas-lite/holdem"
)

// MemoryStore keeps snapshots in a map. Values are stored as JSON so
// callers get a private copy back, same as the database backends.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, gameID string, snap *holdem.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[gameID] = blob
	return nil
}

func (s *MemoryStore) Load(_ context.Context, gameID string) (*holdem.Snapshot, error) {
	s.mu.RLock()
	blob, ok := s.blobs[gameID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var snap holdem.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *MemoryStore) Delete(_ context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, gameID)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
