package events

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// MockPublisher is a mock implementation of Publisher for testing.
// It is safe for concurrent use.
type MockPublisher struct {
	mu sync.Mutex

	// Spies for method calls
	SendMessageFunc func(topic EventType, data any) error

	// Call records
	SendMessageCalls []SendMessageCall
}

// SendMessageCall holds the arguments for a call to SendMessage.
type SendMessageCall struct {
	Topic string
	Data  any
}

// NewMock creates a new mock Publisher. The projectID is ignored.
func NewMock(projectID string) *MockPublisher {
	return &MockPublisher{}
}

// Reset clears all call records.
func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = nil
}

// SendMessage records the call and executes the mock function if provided.
func (m *MockPublisher) SendMessage(topic EventType, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = append(m.SendMessageCalls, SendMessageCall{Topic: string(topic), Data: data})
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(topic, data)
	}
	return nil
}

// ProcessMessage decodes data like the real client does.
func (m *MockPublisher) ProcessMessage(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}
