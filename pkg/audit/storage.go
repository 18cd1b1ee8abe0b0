package audit

import (
	"context"
	"sync"
)

// Storage persists audit records.
type Storage interface {
	Store(ctx context.Context, rec Record) error
}

// MemoryStorage keeps records in memory, newest last. Intended for tests and
// single-process setups where persistence across restarts does not matter.
type MemoryStorage struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Store(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Records returns a copy of everything stored so far.
func (s *MemoryStorage) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of stored records.
func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
