package billiards

import (
	"context"
	"database/sql"
	"time"
)

// remoteStore maps every operation to a single statement (or transaction,
// for ReplaceDay) against the billiards_records table, ordered server-side.
type remoteStore struct {
	db *sql.DB
}

// NewStore creates a RecordStore backed by the relational database.
func NewStore(db *sql.DB) RecordStore {
	return &remoteStore{db: db}
}

const selectColumns = "id, player_name, base_dama, minus_dama, plus_dama, percentage, created_at"

func (s *remoteStore) Insert(ctx context.Context, record Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO billiards_records (id, player_name, base_dama, minus_dama, plus_dama, percentage, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.PlayerName, record.BaseDama, record.MinusDama, record.PlusDama,
		record.Percentage, record.CreatedAt.Unix())
	return err
}

func (s *remoteStore) ByDateRange(ctx context.Context, from, to time.Time) ([]Record, error) {
	return s.query(ctx, `
		SELECT `+selectColumns+` FROM billiards_records
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at, id
	`, from.Unix(), to.Unix())
}

func (s *remoteStore) ByNameSince(ctx context.Context, name string, since time.Time, limit int) ([]Record, error) {
	return s.query(ctx, `
		SELECT `+selectColumns+` FROM billiards_records
		WHERE player_name = ? AND created_at >= ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, name, since.Unix(), limit)
}

func (s *remoteStore) ListSince(ctx context.Context, since time.Time) ([]Record, error) {
	return s.query(ctx, `
		SELECT `+selectColumns+` FROM billiards_records
		WHERE created_at >= ?
		ORDER BY created_at DESC, id DESC
	`, since.Unix())
}

// ReplaceDay deletes the day's rows and inserts the new batch in one
// transaction, so a reader never observes old and new rows together.
func (s *remoteStore) ReplaceDay(ctx context.Context, from, to time.Time, records []Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM billiards_records WHERE created_at >= ? AND created_at < ?",
		from.Unix(), to.Unix()); err != nil {
		tx.Rollback()
		return err
	}

	for _, record := range records {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO billiards_records (id, player_name, base_dama, minus_dama, plus_dama, percentage, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, record.ID, record.PlayerName, record.BaseDama, record.MinusDama, record.PlusDama,
			record.Percentage, record.CreatedAt.Unix()); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *remoteStore) query(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.PlayerName, &r.BaseDama, &r.MinusDama, &r.PlusDama,
			&r.Percentage, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}
