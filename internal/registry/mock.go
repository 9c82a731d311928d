package registry

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the UserStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListFunc       func(ctx context.Context) ([]User, error)
	InsertFunc     func(ctx context.Context, user User) error
	FindByNameFunc func(ctx context.Context, name string) (*User, error)

	// Call records
	InsertCalls     []User
	FindByNameCalls []string
}

// NewMock creates a new mock UserStore.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) List(ctx context.Context) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) Insert(ctx context.Context, user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls = append(m.InsertCalls, user)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, user)
	}
	return nil
}

func (m *MockStore) FindByName(ctx context.Context, name string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindByNameCalls = append(m.FindByNameCalls, name)
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}
