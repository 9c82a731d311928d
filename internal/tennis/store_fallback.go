package tennis

import (
	"context"
	"sync"

	"github.com/lhclub/recordkeeper/internal/kv"
)

const recordsCollection = "tennis_records"

// fallbackStore keeps all records as one encoded blob in the local key-value
// table, appended in creation order.
type fallbackStore struct {
	kv *kv.Store
	mu sync.Mutex
}

// NewFallbackStore creates a RecordStore backed by the local key-value table.
func NewFallbackStore(kvs *kv.Store) RecordStore {
	return &fallbackStore{kv: kvs}
}

func (s *fallbackStore) List(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx), nil
}

func (s *fallbackStore) Insert(ctx context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load(ctx)
	records = append(records, record)
	return s.kv.Save(ctx, recordsCollection, records)
}

func (s *fallbackStore) load(ctx context.Context) []Record {
	var records []Record
	s.kv.Load(ctx, recordsCollection, &records)
	return records
}
