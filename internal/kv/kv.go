// Package kv persists whole logical collections as single encoded blobs in a
// local key-value table. It backs the fallback storage mode: each collection
// is read in full, mutated in memory and written back in full.
package kv

import (
	"context"
	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Store reads and writes collection blobs in the collections table.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load decodes the named collection into out. A missing, unreadable or
// undecodable blob is treated as an empty collection: it is logged and out is
// left untouched. Read failures are never surfaced to the caller.
func (s *Store) Load(ctx context.Context, name string, out any) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM collections WHERE name = ?", name).Scan(&data)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Warn("Failed to read collection, treating as empty", "collection", name, "error", err)
		}
		return
	}
	if len(data) == 0 {
		return
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		log.Warn("Failed to decode collection, treating as empty", "collection", name, "error", err)
	}
}

// Save encodes v and replaces the named collection blob. Write failures
// propagate to the caller.
func (s *Store) Save(ctx context.Context, name string, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data
	`, name, data)
	return err
}
