package telemetry

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a testify/mock-based EventPublisher double: permissive
// default stubs plus recorded calls a test can assert against.
type MockPublisher struct {
	mock.Mock
	mu         sync.Mutex
	placements []PlacementEvent
	summaries  []Summary
}

// NewMockPublisher returns a MockPublisher with permissive default stubs
// so tests that don't care about telemetry can use it without per-call
// expectations.
func NewMockPublisher() *MockPublisher {
	m := &MockPublisher{}
	m.On("PublishPlacement", mock.Anything).Return(nil).Maybe()
	m.On("PublishSummary", mock.Anything).Return(nil).Maybe()
	m.On("Disconnect").Return().Maybe()
	return m
}

// PublishPlacement implements EventPublisher and records e for later
// inspection via Placements.
func (m *MockPublisher) PublishPlacement(e PlacementEvent) error {
	args := m.Called(e)
	m.mu.Lock()
	m.placements = append(m.placements, e)
	m.mu.Unlock()
	return args.Error(0)
}

// PublishSummary implements EventPublisher and records s for later
// inspection via Summaries.
func (m *MockPublisher) PublishSummary(s Summary) error {
	args := m.Called(s)
	m.mu.Lock()
	m.summaries = append(m.summaries, s)
	m.mu.Unlock()
	return args.Error(0)
}

// Disconnect implements EventPublisher.
func (m *MockPublisher) Disconnect() {
	m.Called()
}

// Placements returns every PlacementEvent recorded so far.
func (m *MockPublisher) Placements() []PlacementEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PlacementEvent, len(m.placements))
	copy(out, m.placements)
	return out
}

// Summaries returns every Summary recorded so far.
func (m *MockPublisher) Summaries() []Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Summary, len(m.summaries))
	copy(out, m.summaries)
	return out
}
