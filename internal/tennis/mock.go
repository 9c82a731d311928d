package tennis

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the RecordStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListFunc   func(ctx context.Context) ([]Record, error)
	InsertFunc func(ctx context.Context, record Record) error

	// Call records
	InsertCalls []Record
}

// NewMock creates a new mock RecordStore.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) List(ctx context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
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
