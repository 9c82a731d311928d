package registry

import (
	"context"
	"database/sql"
	"time"
)

// remoteStore maps every operation to a single statement against the users
// table, ordered server-side.
type remoteStore struct {
	db *sql.DB
}

// NewStore creates a UserStore backed by the relational database.
func NewStore(db *sql.DB) UserStore {
	return &remoteStore{db: db}
}

func (s *remoteStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM users ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *remoteStore) Insert(ctx context.Context, user User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)",
		user.ID, user.Name, user.CreatedAt.Unix())
	return err
}

func (s *remoteStore) FindByName(ctx context.Context, name string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM users WHERE name = ? COLLATE NOCASE LIMIT 1", name)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func scanUser(scanner interface{ Scan(...any) error }) (User, error) {
	var user User
	var createdAt int64
	if err := scanner.Scan(&user.ID, &user.Name, &createdAt); err != nil {
		return User{}, err
	}
	user.CreatedAt = time.Unix(createdAt, 0)
	return user, nil
}
