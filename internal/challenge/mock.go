package challenge

// MockRecorder is a mock implementation of the Recorder interface for testing.
type MockRecorder struct {
	RecordAttemptFunc func(playerID, challengeID string, scoreValue, maxValue int) (*Result, error)

	RecordAttemptCalls []struct {
		PlayerID    string
		ChallengeID string
		ScoreValue  int
		MaxValue    int
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockRecorder {
	return &MockRecorder{}
}

func (m *MockRecorder) RecordAttempt(playerID, challengeID string, scoreValue, maxValue int) (*Result, error) {
	m.RecordAttemptCalls = append(m.RecordAttemptCalls, struct {
		PlayerID    string
		ChallengeID string
		ScoreValue  int
		MaxValue    int
	}{playerID, challengeID, scoreValue, maxValue})
	if m.RecordAttemptFunc != nil {
		return m.RecordAttemptFunc(playerID, challengeID, scoreValue, maxValue)
	}
	return &Result{}, nil
}
