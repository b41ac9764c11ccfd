package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
)

// MemoryStore keeps records in a map. It backs local runs and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string]model.ActionRecord
	failWith error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{records: make(map[string]model.ActionRecord)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend implements Store.
func (s *MemoryStore) Backend() string { return "memory" }

// Insert implements Store.
func (s *MemoryStore) Insert(ctx context.Context, rec model.ActionRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInsertFailed, err)
	}
	if rec.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return fmt.Errorf("%w: %w", ErrInsertFailed, s.failWith)
	}
	if _, exists := s.records[rec.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
	}
	s.records[rec.ID] = rec
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (model.ActionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return model.ActionRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, nil
}

// List returns all records ordered by TimeStamp, then ID.
func (s *MemoryStore) List() []model.ActionRecord {
	s.mu.RLock()
	out := make([]model.ActionRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].TimeStamp != out[j].TimeStamp {
			return out[i].TimeStamp < out[j].TimeStamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Count returns the number of stored records.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
