package notifier

import (
	"sync"

	"github.com/courtsidehq/courtside/internal/match"
	"github.com/courtsidehq/courtside/internal/ranking"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendMatchResultFunc  func(m *match.Match, player1Name, player2Name string) error
	SendDisputeAlertFunc func(m *match.Match, disputedByName string) error
	SendLeaderboardFunc  func(lb *ranking.Leaderboard) error

	SendMatchResultCalls  []*match.Match
	SendDisputeAlertCalls []*match.Match
	SendLeaderboardCalls  []*ranking.Leaderboard
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendMatchResult(mt *match.Match, player1Name, player2Name string) error {
	m.mu.Lock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, mt)
	m.mu.Unlock()
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(mt, player1Name, player2Name)
	}
	return nil
}

func (m *Mock) SendDisputeAlert(mt *match.Match, disputedByName string) error {
	m.mu.Lock()
	m.SendDisputeAlertCalls = append(m.SendDisputeAlertCalls, mt)
	m.mu.Unlock()
	if m.SendDisputeAlertFunc != nil {
		return m.SendDisputeAlertFunc(mt, disputedByName)
	}
	return nil
}

func (m *Mock) SendLeaderboard(lb *ranking.Leaderboard) error {
	m.mu.Lock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, lb)
	m.mu.Unlock()
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(lb)
	}
	return nil
}
