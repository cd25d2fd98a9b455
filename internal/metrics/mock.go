package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	matchesCreated      int
	matchesSettled      int
	matchesDisputed     int
	settlementDurations []float64
	checkIns            int
	checkInsRejected    int
	staleEvictions      int
	rankingQueries      int
	notifSent           int
	notifFailed         int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		settlementDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMatchesCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesCreated++
}

func (m *Mock) IncMatchesSettled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesSettled++
}

func (m *Mock) IncMatchesDisputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesDisputed++
}

func (m *Mock) ObserveSettlementDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settlementDurations = append(m.settlementDurations, duration)
}

func (m *Mock) IncCheckIns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkIns++
}

func (m *Mock) IncCheckInsRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkInsRejected++
}

func (m *Mock) AddStaleEvictions(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staleEvictions += count
}

func (m *Mock) IncRankingQueries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingQueries++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesSettled returns the number of times IncMatchesSettled was called.
func (m *Mock) MatchesSettled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesSettled
}

// MatchesDisputed returns the number of times IncMatchesDisputed was called.
func (m *Mock) MatchesDisputed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesDisputed
}

// CheckIns returns the number of times IncCheckIns was called.
func (m *Mock) CheckIns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checkIns
}

// CheckInsRejected returns the number of times IncCheckInsRejected was called.
func (m *Mock) CheckInsRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checkInsRejected
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// StaleEvictions returns the running eviction total.
func (m *Mock) StaleEvictions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.staleEvictions
}
