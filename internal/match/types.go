package match

import (
	"database/sql"
	"sync"
	"time"

	"github.com/courtsidehq/courtside/internal/reference"
	"github.com/courtsidehq/courtside/internal/rewards"
	"github.com/courtsidehq/courtside/internal/stats"
)

// store handles database operations for the match lifecycle.
type store struct {
	db    *sql.DB
	refs  reference.Store
	stats stats.Store
	mu    sync.RWMutex
}

// Status is a match lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDisputed   Status = "disputed"
	StatusCancelled  Status = "cancelled"
	StatusDeclined   Status = "declined"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusDisputed, StatusCancelled, StatusDeclined:
		return true
	}
	return false
}

// Match is one 1-on-1 duel. Scores are either both nil or both set; the winner
// is nil for an unscored match and for a draw.
type Match struct {
	ID            string     `json:"id"`
	VenueID       string     `json:"venue_id"`
	SportID       string     `json:"sport_id"`
	Player1ID     string     `json:"player1_id"`
	Player2ID     string     `json:"player2_id"`
	Status        Status     `json:"status"`
	Player1Score  *int       `json:"player1_score,omitempty"`
	Player2Score  *int       `json:"player2_score,omitempty"`
	WinnerID      *string    `json:"winner_id,omitempty"`
	WinnerXP      int        `json:"winner_xp"`
	WinnerRP      int        `json:"winner_rp"`
	LoserXP       int        `json:"loser_xp"`
	LoserRP       int        `json:"loser_rp"`
	Player1Ready  bool       `json:"player1_ready"`
	Player2Ready  bool       `json:"player2_ready"`
	Player1Agreed bool       `json:"player1_agreed"`
	Player2Agreed bool       `json:"player2_agreed"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// IsParticipant reports whether the player is one of the two sides.
func (m *Match) IsParticipant(playerID string) bool {
	return playerID == m.Player1ID || playerID == m.Player2ID
}

// Opponent returns the other participant's id.
func (m *Match) Opponent(playerID string) string {
	if playerID == m.Player1ID {
		return m.Player2ID
	}
	return m.Player1ID
}

// ReadyResult reports whether a readiness call started the match.
type ReadyResult struct {
	Started bool `json:"started"`
}

// AgreeResult reports the outcome of one agreement call. Settled is true only
// for the single call that performed settlement; a concurrent second caller
// observes BothAgreed without Settled.
type AgreeResult struct {
	BothAgreed bool            `json:"bothAgreed"`
	Settled    bool            `json:"-"`
	Reward     *rewards.Reward `json:"rewards,omitempty"`
}
