package presence

import (
	"sync"
	"time"
)

// MockTracker is a mock implementation of the Tracker interface for testing.
// It is safe for concurrent use.
type MockTracker struct {
	mu sync.Mutex

	CheckInFunc           func(playerID, venueID string, lat, lng float64) error
	CheckOutFunc          func(playerID, venueID string) error
	GetStatusFunc         func(playerID, venueID string) (*Status, error)
	HeartbeatFunc         func(playerID, venueID string, lat, lng float64) error
	CleanupStaleFunc      func(threshold time.Duration) (int, error)
	ListActiveAtVenueFunc func(venueID string) ([]ActivePlayer, error)

	CheckInCalls []struct {
		PlayerID string
		VenueID  string
		Lat      float64
		Lng      float64
	}
	CheckOutCalls     [][2]string
	CleanupStaleCalls []time.Duration
}

// NewMock creates a new mock instance.
func NewMock() *MockTracker {
	return &MockTracker{}
}

func (m *MockTracker) CheckIn(playerID, venueID string, lat, lng float64) error {
	m.mu.Lock()
	m.CheckInCalls = append(m.CheckInCalls, struct {
		PlayerID string
		VenueID  string
		Lat      float64
		Lng      float64
	}{playerID, venueID, lat, lng})
	m.mu.Unlock()
	if m.CheckInFunc != nil {
		return m.CheckInFunc(playerID, venueID, lat, lng)
	}
	return nil
}

func (m *MockTracker) CheckOut(playerID, venueID string) error {
	m.mu.Lock()
	m.CheckOutCalls = append(m.CheckOutCalls, [2]string{playerID, venueID})
	m.mu.Unlock()
	if m.CheckOutFunc != nil {
		return m.CheckOutFunc(playerID, venueID)
	}
	return nil
}

func (m *MockTracker) GetStatus(playerID, venueID string) (*Status, error) {
	if m.GetStatusFunc != nil {
		return m.GetStatusFunc(playerID, venueID)
	}
	return &Status{IsCheckedIn: false}, nil
}

func (m *MockTracker) Heartbeat(playerID, venueID string, lat, lng float64) error {
	if m.HeartbeatFunc != nil {
		return m.HeartbeatFunc(playerID, venueID, lat, lng)
	}
	return nil
}

func (m *MockTracker) CleanupStale(threshold time.Duration) (int, error) {
	m.mu.Lock()
	m.CleanupStaleCalls = append(m.CleanupStaleCalls, threshold)
	m.mu.Unlock()
	if m.CleanupStaleFunc != nil {
		return m.CleanupStaleFunc(threshold)
	}
	return 0, nil
}

func (m *MockTracker) ListActiveAtVenue(venueID string) ([]ActivePlayer, error) {
	if m.ListActiveAtVenueFunc != nil {
		return m.ListActiveAtVenueFunc(venueID)
	}
	return nil, nil
}
