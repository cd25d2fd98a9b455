package stats

import (
	"database/sql"
	"sync"
)

// store handles database operations for the player stats ledger.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlayerStats is the running ledger for one (player, sport) pair. It is only
// ever mutated by settlement routines and never recomputed from history.
type PlayerStats struct {
	PlayerID            string `json:"player_id"`
	SportID             string `json:"sport_id"`
	MatchesPlayed       int    `json:"matches_played"`
	MatchesWon          int    `json:"matches_won"`
	MatchesLost         int    `json:"matches_lost"`
	ChallengesCompleted int    `json:"challenges_completed"`
	TotalXP             int    `json:"total_xp"`
	TotalRP             int    `json:"total_rp"`
	SpendableRP         int    `json:"spendable_rp"`
}

// Execer is the subset of *sql.DB and *sql.Tx the credit operations need, so
// settlement can run inside the caller's transaction.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}
