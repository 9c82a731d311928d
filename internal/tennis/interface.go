package tennis

import "context"

// RecordStore persists doubles results. Both implementations (local fallback
// and remote backed) return identically shaped records.
type RecordStore interface {
	// List returns all records ascending by creation.
	List(ctx context.Context) ([]Record, error)
	// Insert appends a record. Records are never overwritten.
	Insert(ctx context.Context, record Record) error
}
