package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	registrations     int
	tennisSaves       int
	billiardsDaySaves int
	requestDurations  []float64
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requestDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRegistrations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registrations++
}

func (m *Mock) IncTennisSaves() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tennisSaves++
}

func (m *Mock) IncBilliardsDaySaves() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.billiardsDaySaves++
}

func (m *Mock) ObserveRequestDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestDurations = append(m.requestDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Registrations returns the number of times IncRegistrations was called.
func (m *Mock) RegistrationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registrations
}

// TennisSaveCount returns the number of times IncTennisSaves was called.
func (m *Mock) TennisSaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tennisSaves
}

// BilliardsDaySaveCount returns the number of times IncBilliardsDaySaves was called.
func (m *Mock) BilliardsDaySaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.billiardsDaySaves
}

// SlackNotifSentCount returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailedCount returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
