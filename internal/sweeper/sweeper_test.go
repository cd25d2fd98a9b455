package sweeper

import (
	"errors"
	"testing"
	"time"

	"github.com/courtsidehq/courtside/internal/metrics"
	"github.com/courtsidehq/courtside/internal/presence"
	"github.com/courtsidehq/courtside/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_EvictsAndPublishes(t *testing.T) {
	tracker := presence.NewMock()
	tracker.CleanupStaleFunc = func(threshold time.Duration) (int, error) {
		return 3, nil
	}
	metricsMock := metrics.NewMock()
	pubsubMock := pubsub.NewMock("")

	s := New(tracker, metricsMock, pubsubMock, time.Minute, 2*time.Hour)

	evicted, err := s.sweep()
	require.NoError(t, err)
	assert.Equal(t, 3, evicted)
	assert.Equal(t, 3, metricsMock.StaleEvictions())

	require.Len(t, pubsubMock.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventPresenceEvicted), pubsubMock.SendMessageCalls[0].Topic)
	event, ok := pubsubMock.SendMessageCalls[0].Data.(pubsub.PresenceEvictedEvent)
	require.True(t, ok)
	assert.Equal(t, 3, event.Count)
}

func TestSweep_NothingStale(t *testing.T) {
	tracker := presence.NewMock()
	metricsMock := metrics.NewMock()
	pubsubMock := pubsub.NewMock("")

	s := New(tracker, metricsMock, pubsubMock, time.Minute, 2*time.Hour)

	evicted, err := s.sweep()
	require.NoError(t, err)
	assert.Zero(t, evicted)
	assert.Zero(t, metricsMock.StaleEvictions())
	assert.Empty(t, pubsubMock.SendMessageCalls)
}

func TestSweep_TrackerError(t *testing.T) {
	tracker := presence.NewMock()
	tracker.CleanupStaleFunc = func(threshold time.Duration) (int, error) {
		return 0, errors.New("db locked")
	}
	s := New(tracker, metrics.NewMock(), nil, time.Minute, 2*time.Hour)

	_, err := s.sweep()
	assert.Error(t, err)
}
