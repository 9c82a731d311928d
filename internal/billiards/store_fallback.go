package billiards

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lhclub/recordkeeper/internal/kv"
)

const recordsCollection = "billiards_records"

// fallbackStore keeps all records as one encoded blob in the local key-value
// table. Filtering and ordering happen in memory so callers see the same
// shapes as the remote store; ReplaceDay is a single blob rewrite, which
// keeps the day replacement atomic at rest.
type fallbackStore struct {
	kv *kv.Store
	mu sync.Mutex
}

// NewFallbackStore creates a RecordStore backed by the local key-value table.
func NewFallbackStore(kvs *kv.Store) RecordStore {
	return &fallbackStore{kv: kvs}
}

func (s *fallbackStore) Insert(ctx context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load(ctx)
	records = append(records, record)
	return s.kv.Save(ctx, recordsCollection, records)
}

func (s *fallbackStore) ByDateRange(ctx context.Context, from, to time.Time) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Record
	for _, record := range s.load(ctx) {
		if inRange(record.CreatedAt, from, to) {
			results = append(results, record)
		}
	}
	sortAscending(results)
	return results, nil
}

func (s *fallbackStore) ByNameSince(ctx context.Context, name string, since time.Time, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Record
	for _, record := range s.load(ctx) {
		if record.PlayerName == name && !record.CreatedAt.Before(since) {
			results = append(results, record)
		}
	}
	sortDescending(results)
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *fallbackStore) ListSince(ctx context.Context, since time.Time) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Record
	for _, record := range s.load(ctx) {
		if !record.CreatedAt.Before(since) {
			results = append(results, record)
		}
	}
	sortDescending(results)
	return results, nil
}

func (s *fallbackStore) ReplaceDay(ctx context.Context, from, to time.Time, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []Record
	for _, record := range s.load(ctx) {
		if !inRange(record.CreatedAt, from, to) {
			kept = append(kept, record)
		}
	}
	kept = append(kept, records...)
	return s.kv.Save(ctx, recordsCollection, kept)
}

func (s *fallbackStore) load(ctx context.Context) []Record {
	var records []Record
	s.kv.Load(ctx, recordsCollection, &records)
	return records
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func sortAscending(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}

func sortDescending(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[j].CreatedAt.Before(records[i].CreatedAt)
	})
}
