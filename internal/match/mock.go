package match

import "sync"

// MockLifecycle is a mock implementation of the Lifecycle interface for
// testing. It is safe for concurrent use.
type MockLifecycle struct {
	mu sync.Mutex

	CreateFunc      func(actingPlayerID, opponentID, venueID, sportID string) (string, error)
	GetFunc         func(matchID string) (*Match, error)
	MarkReadyFunc   func(matchID, actingPlayerID string) (*ReadyResult, error)
	SubmitScoreFunc func(matchID, actingPlayerID string, score1, score2 int) error
	AgreeFunc       func(matchID, actingPlayerID string) (*AgreeResult, error)
	DisputeFunc     func(matchID, actingPlayerID string) error
	DeclineFunc     func(matchID, actingPlayerID string) error
	CancelFunc      func(matchID, actingPlayerID string) error

	CreateCalls []struct {
		ActingPlayerID string
		OpponentID     string
		VenueID        string
		SportID        string
	}
	AgreeCalls   [][2]string
	DisputeCalls [][2]string
}

// NewMock creates a new mock instance.
func NewMock() *MockLifecycle {
	return &MockLifecycle{}
}

func (m *MockLifecycle) Create(actingPlayerID, opponentID, venueID, sportID string) (string, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, struct {
		ActingPlayerID string
		OpponentID     string
		VenueID        string
		SportID        string
	}{actingPlayerID, opponentID, venueID, sportID})
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(actingPlayerID, opponentID, venueID, sportID)
	}
	return "mock-match-id", nil
}

func (m *MockLifecycle) Get(matchID string) (*Match, error) {
	if m.GetFunc != nil {
		return m.GetFunc(matchID)
	}
	return nil, ErrNotFound
}

func (m *MockLifecycle) MarkReady(matchID, actingPlayerID string) (*ReadyResult, error) {
	if m.MarkReadyFunc != nil {
		return m.MarkReadyFunc(matchID, actingPlayerID)
	}
	return &ReadyResult{}, nil
}

func (m *MockLifecycle) SubmitScore(matchID, actingPlayerID string, score1, score2 int) error {
	if m.SubmitScoreFunc != nil {
		return m.SubmitScoreFunc(matchID, actingPlayerID, score1, score2)
	}
	return nil
}

func (m *MockLifecycle) Agree(matchID, actingPlayerID string) (*AgreeResult, error) {
	m.mu.Lock()
	m.AgreeCalls = append(m.AgreeCalls, [2]string{matchID, actingPlayerID})
	m.mu.Unlock()
	if m.AgreeFunc != nil {
		return m.AgreeFunc(matchID, actingPlayerID)
	}
	return &AgreeResult{}, nil
}

func (m *MockLifecycle) Dispute(matchID, actingPlayerID string) error {
	m.mu.Lock()
	m.DisputeCalls = append(m.DisputeCalls, [2]string{matchID, actingPlayerID})
	m.mu.Unlock()
	if m.DisputeFunc != nil {
		return m.DisputeFunc(matchID, actingPlayerID)
	}
	return nil
}

func (m *MockLifecycle) Decline(matchID, actingPlayerID string) error {
	if m.DeclineFunc != nil {
		return m.DeclineFunc(matchID, actingPlayerID)
	}
	return nil
}

func (m *MockLifecycle) Cancel(matchID, actingPlayerID string) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(matchID, actingPlayerID)
	}
	return nil
}
