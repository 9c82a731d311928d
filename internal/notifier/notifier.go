package notifier

import (
	"github.com/lhclub/recordkeeper/internal/billiards"
	"github.com/lhclub/recordkeeper/internal/tennis"
)

// Notifier defines a high-level interface for announcing business events.
// This decouples the rest of the application from the specific notification
// provider (e.g., Slack).
type Notifier interface {
	// SendTennisResult announces a freshly saved doubles result.
	SendTennisResult(record tennis.Record, dryRun bool) error
	// SendBilliardsStandings announces a day's ranked standings after a save.
	SendBilliardsStandings(date string, ranked []billiards.RankedRecord, dryRun bool) error
}

// Noop is a Notifier that does nothing. It is used when no notification
// channel is configured.
type Noop struct{}

func (Noop) SendTennisResult(tennis.Record, bool) error                       { return nil }
func (Noop) SendBilliardsStandings(string, []billiards.RankedRecord, bool) error { return nil }
