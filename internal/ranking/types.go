package ranking

import (
	"database/sql"
	"sync"
)

// store handles the read-only leaderboard projections.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Level selects the geographic scope of a leaderboard.
type Level string

const (
	LevelVenue   Level = "venue"
	LevelCity    Level = "city"
	LevelCountry Level = "country"
)

// Valid reports whether the level is one of the known scopes.
func (l Level) Valid() bool {
	return l == LevelVenue || l == LevelCity || l == LevelCountry
}

// Entry is one row of a leaderboard: a derived, per-request projection that is
// never persisted.
type Entry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	XP         int    `json:"xp"`
	Rank       int    `json:"rank"`
	IsKing     bool   `json:"is_king"`
}

// Leaderboard is the full response for one rankings query. King and
// CurrentUser are nil when the scope is empty or the requester has no entry.
type Leaderboard struct {
	Level        Level   `json:"level"`
	SportID      string  `json:"sport"`
	Location     string  `json:"location"`
	King         *Entry  `json:"king"`
	Rankings     []Entry `json:"rankings"`
	CurrentUser  *Entry  `json:"currentUser"`
	TotalPlayers int     `json:"totalPlayers"`
}
