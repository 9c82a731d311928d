package notifier

import (
	"sync"

	"github.com/lhclub/recordkeeper/internal/billiards"
	"github.com/lhclub/recordkeeper/internal/tennis"
)

// MockNotifier is a mock implementation of the Notifier interface for
// testing. It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendTennisResultFunc       func(record tennis.Record, dryRun bool) error
	SendBilliardsStandingsFunc func(date string, ranked []billiards.RankedRecord, dryRun bool) error

	// Call records
	TennisResultCalls       []TennisResultCall
	BilliardsStandingsCalls []BilliardsStandingsCall
}

// TennisResultCall holds the arguments for a call to SendTennisResult.
type TennisResultCall struct {
	Record tennis.Record
	DryRun bool
}

// BilliardsStandingsCall holds the arguments for a call to SendBilliardsStandings.
type BilliardsStandingsCall struct {
	Date   string
	Ranked []billiards.RankedRecord
	DryRun bool
}

// NewMock creates a new mock Notifier.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendTennisResult(record tennis.Record, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TennisResultCalls = append(m.TennisResultCalls, TennisResultCall{Record: record, DryRun: dryRun})
	if m.SendTennisResultFunc != nil {
		return m.SendTennisResultFunc(record, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendBilliardsStandings(date string, ranked []billiards.RankedRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BilliardsStandingsCalls = append(m.BilliardsStandingsCalls, BilliardsStandingsCall{Date: date, Ranked: ranked, DryRun: dryRun})
	if m.SendBilliardsStandingsFunc != nil {
		return m.SendBilliardsStandingsFunc(date, ranked, dryRun)
	}
	return nil
}
