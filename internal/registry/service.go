package registry

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lhclub/recordkeeper/internal/apperr"
)

// maxNameLength is the maximum roster name length in characters.
const maxNameLength = 20

const (
	msgNameRequired = "이름을 입력하세요"
	msgNameTooLong  = "이름은 최대 20자까지 입력 가능합니다"
	msgNameTaken    = "이미 등록된 이름입니다"
)

// Service manages the player roster.
type Service struct {
	store UserStore
	now   func() time.Time
}

func NewService(store UserStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Register validates and persists a new roster name. The name is trimmed
// before validation; collisions are checked case-insensitively.
func (s *Service) Register(ctx context.Context, name string) (User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return User{}, apperr.Validation(msgNameRequired)
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return User{}, apperr.Validation(msgNameTooLong)
	}

	existing, err := s.store.FindByName(ctx, trimmed)
	if err != nil {
		return User{}, apperr.Storage("failed to look up user", err)
	}
	if existing != nil {
		return User{}, apperr.Duplicate(msgNameTaken)
	}

	user := User{
		ID:        uuid.NewString(),
		Name:      trimmed,
		CreatedAt: s.now(),
	}
	if err := s.store.Insert(ctx, user); err != nil {
		return User{}, apperr.Storage("failed to save user", err)
	}
	log.Info("Registered new player", "name", user.Name, "id", user.ID)
	return user, nil
}

// ListNames returns all roster names, lexicographically ascending.
func (s *Service) ListNames(ctx context.Context) ([]string, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Storage("failed to list users", err)
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	return names, nil
}

// FindByName looks up a user by exact name, ignoring case. It returns
// nil, nil when the roster has no such user.
func (s *Service) FindByName(ctx context.Context, name string) (*User, error) {
	user, err := s.store.FindByName(ctx, name)
	if err != nil {
		return nil, apperr.Storage("failed to look up user", err)
	}
	return user, nil
}
