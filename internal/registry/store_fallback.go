package registry

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/lhclub/recordkeeper/internal/kv"
)

const usersCollection = "users"

// fallbackStore keeps the whole roster as one encoded blob in the local
// key-value table. Every write re-encodes the full collection; the mutex
// serializes concurrent access within the process.
type fallbackStore struct {
	kv *kv.Store
	mu sync.Mutex
}

// NewFallbackStore creates a UserStore backed by the local key-value table.
func NewFallbackStore(kvs *kv.Store) UserStore {
	return &fallbackStore{kv: kvs}
}

func (s *fallbackStore) List(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load(ctx)
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

func (s *fallbackStore) Insert(ctx context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load(ctx)
	users = append(users, user)
	return s.kv.Save(ctx, usersCollection, users)
}

func (s *fallbackStore) FindByName(ctx context.Context, name string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.load(ctx) {
		if strings.EqualFold(user.Name, name) {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fallbackStore) load(ctx context.Context) []User {
	var users []User
	s.kv.Load(ctx, usersCollection, &users)
	return users
}
