package ranking

// MockService is a mock implementation of the Service interface for testing.
type MockService struct {
	LeaderboardFunc func(level Level, scopeID, sportID, currentPlayerID string, limit int) (*Leaderboard, error)

	LeaderboardCalls []struct {
		Level   Level
		ScopeID string
		SportID string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Leaderboard(level Level, scopeID, sportID, currentPlayerID string, limit int) (*Leaderboard, error) {
	m.LeaderboardCalls = append(m.LeaderboardCalls, struct {
		Level   Level
		ScopeID string
		SportID string
	}{level, scopeID, sportID})
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(level, scopeID, sportID, currentPlayerID, limit)
	}
	return &Leaderboard{Level: level, SportID: sportID, Rankings: []Entry{}}, nil
}
