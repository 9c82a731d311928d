package tennis

import (
	"context"
	"database/sql"
	"time"
)

// remoteStore maps every operation to a single statement against the
// tennis_records table, ordered server-side.
type remoteStore struct {
	db *sql.DB
}

// NewStore creates a RecordStore backed by the relational database.
func NewStore(db *sql.DB) RecordStore {
	return &remoteStore{db: db}
}

func (s *remoteStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player1, player2, player3, player4, score_left, score_right, created_at
		FROM tennis_records ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Player1, &r.Player2, &r.Player3, &r.Player4,
			&r.ScoreLeft, &r.ScoreRight, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *remoteStore) Insert(ctx context.Context, record Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tennis_records (id, player1, player2, player3, player4, score_left, score_right, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Player1, record.Player2, record.Player3, record.Player4,
		record.ScoreLeft, record.ScoreRight, record.CreatedAt.Unix())
	return err
}
