package registry

import "context"

// UserStore persists the player roster. Both implementations (local fallback
// and remote backed) return identically shaped records.
type UserStore interface {
	// List returns all users ascending by name (byte order, case-sensitive).
	List(ctx context.Context) ([]User, error)
	// Insert appends a new user.
	Insert(ctx context.Context, user User) error
	// FindByName matches the name case-insensitively. It returns nil, nil
	// when no user matches.
	FindByName(ctx context.Context, name string) (*User, error)
}
