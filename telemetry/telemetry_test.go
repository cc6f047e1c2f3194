package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danherbriley/mamba-crystal-sorting-solution-riley/config"
)

func TestNewMQTTPublisherDisabledWithoutBroker(t *testing.T) {
	p, err := NewMQTTPublisher(config.Telemetry{})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMockPublisherRecordsPlacements(t *testing.T) {
	m := NewMockPublisher()
	event := PlacementEvent{Count: 1, X: 2, Y: 3, RotationDeg: 90, FilledRatio: 0.1, Timestamp: 1000}

	require.NoError(t, m.PublishPlacement(event))
	assert.Equal(t, []PlacementEvent{event}, m.Placements())
}

func TestMockPublisherRecordsSummary(t *testing.T) {
	m := NewMockPublisher()
	summary := Summary{Count: 5, FilledRatio: 0.42, Timestamp: 2000}

	require.NoError(t, m.PublishSummary(summary))
	assert.Equal(t, []Summary{summary}, m.Summaries())
}

func TestMockPublisherDisconnectDoesNotPanic(t *testing.T) {
	m := NewMockPublisher()
	assert.NotPanics(t, func() { m.Disconnect() })
}

func TestNoopPublisherIsInert(t *testing.T) {
	var p EventPublisher = NoopPublisher{}
	assert.NoError(t, p.PublishPlacement(PlacementEvent{}))
	assert.NoError(t, p.PublishSummary(Summary{}))
	assert.NotPanics(t, p.Disconnect)
}
