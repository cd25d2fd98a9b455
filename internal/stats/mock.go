package stats

import (
	"sync"

	"github.com/courtsidehq/courtside/internal/rewards"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	CreditMatchOutcomeFunc func(ex Execer, playerID, sportID string, won, lost bool, r rewards.Reward) error
	CreditChallengeFunc    func(ex Execer, playerID, sportID string, r rewards.Reward) error
	SpendRPFunc            func(playerID, sportID string, amount int) error
	GetFunc                func(playerID, sportID string) (*PlayerStats, error)

	CreditMatchOutcomeCalls []struct {
		PlayerID string
		SportID  string
		Won      bool
		Lost     bool
		Reward   rewards.Reward
	}
	CreditChallengeCalls []struct {
		PlayerID string
		SportID  string
		Reward   rewards.Reward
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreditMatchOutcome(ex Execer, playerID, sportID string, won, lost bool, r rewards.Reward) error {
	m.mu.Lock()
	m.CreditMatchOutcomeCalls = append(m.CreditMatchOutcomeCalls, struct {
		PlayerID string
		SportID  string
		Won      bool
		Lost     bool
		Reward   rewards.Reward
	}{playerID, sportID, won, lost, r})
	m.mu.Unlock()
	if m.CreditMatchOutcomeFunc != nil {
		return m.CreditMatchOutcomeFunc(ex, playerID, sportID, won, lost, r)
	}
	return nil
}

func (m *MockStore) CreditChallenge(ex Execer, playerID, sportID string, r rewards.Reward) error {
	m.mu.Lock()
	m.CreditChallengeCalls = append(m.CreditChallengeCalls, struct {
		PlayerID string
		SportID  string
		Reward   rewards.Reward
	}{playerID, sportID, r})
	m.mu.Unlock()
	if m.CreditChallengeFunc != nil {
		return m.CreditChallengeFunc(ex, playerID, sportID, r)
	}
	return nil
}

func (m *MockStore) SpendRP(playerID, sportID string, amount int) error {
	if m.SpendRPFunc != nil {
		return m.SpendRPFunc(playerID, sportID, amount)
	}
	return nil
}

func (m *MockStore) Get(playerID, sportID string) (*PlayerStats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(playerID, sportID)
	}
	return &PlayerStats{PlayerID: playerID, SportID: sportID}, nil
}
