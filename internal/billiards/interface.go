package billiards

import (
	"context"
	"time"
)

// RecordStore persists handicap session rows. Both implementations (local
// fallback and remote backed) return identically shaped records.
type RecordStore interface {
	// Insert appends a single record.
	Insert(ctx context.Context, record Record) error
	// ByDateRange returns records with from <= created_at < to, ascending by
	// creation.
	ByDateRange(ctx context.Context, from, to time.Time) ([]Record, error)
	// ByNameSince returns records for the player with created_at >= since,
	// descending by created_at, truncated to limit.
	ByNameSince(ctx context.Context, name string, since time.Time, limit int) ([]Record, error)
	// ListSince returns all records with created_at >= since, descending by
	// created_at.
	ListSince(ctx context.Context, since time.Time) ([]Record, error)
	// ReplaceDay deletes records with from <= created_at < to and inserts
	// the given batch as one atomic operation: a concurrent reader observes
	// either the old or the new set, never both.
	ReplaceDay(ctx context.Context, from, to time.Time, records []Record) error
}
