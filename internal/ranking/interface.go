package ranking

// Service produces tie-aware leaderboards from the stats ledger. It only ever
// reads aggregate XP; it never computes or mutates it.
type Service interface {
	// Leaderboard ranks every player in the scope, returns the top limit
	// entries and always includes the requesting player's own entry, even
	// when it falls outside the returned slice.
	Leaderboard(level Level, scopeID, sportID, currentPlayerID string, limit int) (*Leaderboard, error)
}
