package hires

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu      sync.RWMutex
	records []HireRecord
	byID    map[string]int
}

func NewMemoryStore(records ...HireRecord) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]int)}
	for _, record := range records {
		_, _ = s.CreateHire(context.Background(), record)
	}
	return s
}

func (s *MemoryStore) ListHires(ctx context.Context, filter Filter) ([]HireRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]HireRecord, 0, len(s.records))
	for _, record := range s.records {
		if filter.Matches(record) {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].HireDate == out[j].HireDate {
			return out[i].ID < out[j].ID
		}
		return out[i].HireDate < out[j].HireDate
	})
	return out, nil
}

func (s *MemoryStore) GetHire(ctx context.Context, id string) (HireRecord, error) {
	if err := ctx.Err(); err != nil {
		return HireRecord{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return HireRecord{}, ErrNotFound
	}
	return s.records[idx], nil
}

func (s *MemoryStore) CreateHire(ctx context.Context, record HireRecord) (HireRecord, error) {
	if err := ctx.Err(); err != nil {
		return HireRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if _, exists := s.byID[record.ID]; exists {
		return HireRecord{}, ErrDuplicateID
	}
	s.byID[record.ID] = len(s.records)
	s.records = append(s.records, record)
	return record, nil
}

func (s *MemoryStore) CountHires(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
