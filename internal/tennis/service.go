package tennis

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lhclub/recordkeeper/internal/apperr"
)

// Service persists doubles results and answers team-orientation-aware
// queries over them.
type Service struct {
	store RecordStore
	now   func() time.Time
}

func NewService(store RecordStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Save appends a new doubles result. Player occupancy and score ranges are
// the caller's responsibility; the record is stamped at persistence time.
func (s *Service) Save(ctx context.Context, players Players, scores Scores) (Record, error) {
	record := Record{
		ID:         uuid.NewString(),
		Player1:    players.Player1,
		Player2:    players.Player2,
		Player3:    players.Player3,
		Player4:    players.Player4,
		ScoreLeft:  scores.Left,
		ScoreRight: scores.Right,
		CreatedAt:  s.now(),
	}
	if err := s.store.Insert(ctx, record); err != nil {
		return Record{}, apperr.Storage("failed to save tennis record", err)
	}
	log.Info("Saved tennis record", "id", record.ID,
		"left", record.Player1+"/"+record.Player2,
		"right", record.Player3+"/"+record.Player4)
	return record, nil
}

// GetFiltered returns the records matching the filters, in stored order.
// Records whose stored teams satisfy the filters only with sides swapped are
// tagged Flipped; a record matches at most once, with the normal orientation
// taking precedence.
func (s *Service) GetFiltered(ctx context.Context, filters Filters) ([]FilteredRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Storage("failed to list tennis records", err)
	}

	var results []FilteredRecord
	for _, record := range records {
		if flipped, ok := matchRecord(record, filters); ok {
			results = append(results, FilteredRecord{Record: record, Flipped: flipped})
		}
	}
	return results, nil
}
