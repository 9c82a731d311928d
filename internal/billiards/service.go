package billiards

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lhclub/recordkeeper/internal/apperr"
)

const (
	// DefaultLimit caps per-player history queries.
	DefaultLimit = 365
	// historyWindow bounds every read to the last 365 days.
	historyWindow = 365
)

// Service persists handicap sessions day by day and answers date- and
// player-scoped queries over them.
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

// SaveDay replaces today's rows with the given batch. Every persisted row of
// the current calendar day is deleted and one fresh row is inserted per
// entry, all stamped with the same save time. Two concurrent saves for the
// same day race; the last write to complete wins.
func (s *Service) SaveDay(ctx context.Context, entries []Entry) ([]Record, error) {
	now := s.now()
	from := startOfDay(now)
	to := from.AddDate(0, 0, 1)

	records := make([]Record, len(entries))
	for i, entry := range entries {
		records[i] = Record{
			ID:         uuid.NewString(),
			PlayerName: entry.PlayerName,
			BaseDama:   entry.BaseDama,
			MinusDama:  entry.MinusDama,
			PlusDama:   entry.PlusDama,
			Percentage: entry.Percentage,
			CreatedAt:  now,
		}
	}

	if err := s.store.ReplaceDay(ctx, from, to, records); err != nil {
		return nil, apperr.Storage("failed to save billiards records", err)
	}
	log.Info("Saved billiards day", "date", from.Format(dayFormat), "rows", len(records))
	return records, nil
}

// GetByDate returns all rows within the calendar day of date, ascending by
// creation.
func (s *Service) GetByDate(ctx context.Context, date time.Time) ([]Record, error) {
	from := startOfDay(date)
	records, err := s.store.ByDateRange(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, apperr.Storage("failed to load billiards records", err)
	}
	return records, nil
}

// GetByName returns the player's rows from the last 365 days, newest first,
// truncated to limit. A non-positive limit applies DefaultLimit.
func (s *Service) GetByName(ctx context.Context, name string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	since := s.now().AddDate(0, 0, -historyWindow)
	records, err := s.store.ByNameSince(ctx, name, since, limit)
	if err != nil {
		return nil, apperr.Storage("failed to load billiards records", err)
	}
	return records, nil
}

const dayFormat = "2006-01-02"

// GetAvailableDates returns the distinct calendar days with records in the
// last 365 days, formatted as YYYY-MM-DD, descending.
func (s *Service) GetAvailableDates(ctx context.Context) ([]string, error) {
	since := s.now().AddDate(0, 0, -historyWindow)
	records, err := s.store.ListSince(ctx, since)
	if err != nil {
		return nil, apperr.Storage("failed to load billiards records", err)
	}

	seen := make(map[string]bool)
	var dates []string
	// Records arrive newest first, so the first occurrence of each day keeps
	// the list descending.
	for _, record := range records {
		day := record.CreatedAt.Format(dayFormat)
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	return dates, nil
}

// startOfDay returns local midnight of t's calendar day, in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
