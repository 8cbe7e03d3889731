package memory

import (
	"context"
	"sync"

	"github.com/aretw0/fibgen/pkg/domain"
)

// Store implements ports.RecordStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Record
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Record),
	}
}

// Save persists a copy of the record in memory.
func (s *Store) Save(ctx context.Context, record *domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.ID] = *record
	return nil
}

// Load retrieves the record from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &record, nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns every record, newest first.
func (s *Store) List(ctx context.Context) ([]*domain.Record, error) {
	s.mu.RLock()
	records := make([]*domain.Record, 0, len(s.data))
	for _, r := range s.data {
		records = append(records, &r)
	}
	s.mu.RUnlock()

	domain.SortNewestFirst(records)
	return records, nil
}
