package billiards

import (
	"context"
	"sync"
	"time"
)

// MockStore is a mock implementation of the RecordStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	InsertFunc      func(ctx context.Context, record Record) error
	ByDateRangeFunc func(ctx context.Context, from, to time.Time) ([]Record, error)
	ByNameSinceFunc func(ctx context.Context, name string, since time.Time, limit int) ([]Record, error)
	ListSinceFunc   func(ctx context.Context, since time.Time) ([]Record, error)
	ReplaceDayFunc  func(ctx context.Context, from, to time.Time, records []Record) error

	// Call records
	InsertCalls     []Record
	ReplaceDayCalls []ReplaceDayCall
	ByNameCalls     []ByNameCall
}

// ReplaceDayCall holds the arguments for a call to ReplaceDay.
type ReplaceDayCall struct {
	From    time.Time
	To      time.Time
	Records []Record
}

// ByNameCall holds the arguments for a call to ByNameSince.
type ByNameCall struct {
	Name  string
	Since time.Time
	Limit int
}

// NewMock creates a new mock RecordStore.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Insert(ctx context.Context, record Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls = append(m.InsertCalls, record)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, record)
	}
	return nil
}

func (m *MockStore) ByDateRange(ctx context.Context, from, to time.Time) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ByDateRangeFunc != nil {
		return m.ByDateRangeFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockStore) ByNameSince(ctx context.Context, name string, since time.Time, limit int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ByNameCalls = append(m.ByNameCalls, ByNameCall{Name: name, Since: since, Limit: limit})
	if m.ByNameSinceFunc != nil {
		return m.ByNameSinceFunc(ctx, name, since, limit)
	}
	return nil, nil
}

func (m *MockStore) ListSince(ctx context.Context, since time.Time) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListSinceFunc != nil {
		return m.ListSinceFunc(ctx, since)
	}
	return nil, nil
}

func (m *MockStore) ReplaceDay(ctx context.Context, from, to time.Time, records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceDayCalls = append(m.ReplaceDayCalls, ReplaceDayCall{From: from, To: to, Records: records})
	if m.ReplaceDayFunc != nil {
		return m.ReplaceDayFunc(ctx, from, to, records)
	}
	return nil
}
