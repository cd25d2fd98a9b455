package reference

// MockStore is a mock implementation of the Store interface for testing.
type MockStore struct {
	GetVenueFunc      func(venueID string) (*Venue, error)
	GetSportFunc      func(sportID string) (*Sport, error)
	GetChallengeFunc  func(challengeID string) (*Challenge, error)
	GetPlayerNameFunc func(playerID string) (string, error)

	GetVenueCalls     []string
	GetSportCalls     []string
	GetChallengeCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) GetVenue(venueID string) (*Venue, error) {
	m.GetVenueCalls = append(m.GetVenueCalls, venueID)
	if m.GetVenueFunc != nil {
		return m.GetVenueFunc(venueID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetSport(sportID string) (*Sport, error) {
	m.GetSportCalls = append(m.GetSportCalls, sportID)
	if m.GetSportFunc != nil {
		return m.GetSportFunc(sportID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetChallenge(challengeID string) (*Challenge, error) {
	m.GetChallengeCalls = append(m.GetChallengeCalls, challengeID)
	if m.GetChallengeFunc != nil {
		return m.GetChallengeFunc(challengeID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetPlayerName(playerID string) (string, error) {
	if m.GetPlayerNameFunc != nil {
		return m.GetPlayerNameFunc(playerID)
	}
	return "", ErrNotFound
}
