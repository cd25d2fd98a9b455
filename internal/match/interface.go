package match

// Lifecycle owns the match state machine. Every operation takes the acting
// player's identity explicitly and rejects non-participants before mutating.
type Lifecycle interface {
	// Create opens a pending match between the acting player and an opponent.
	Create(actingPlayerID, opponentID, venueID, sportID string) (string, error)
	Get(matchID string) (*Match, error)
	// MarkReady records the acting player's readiness. The match starts once
	// both participants are ready.
	MarkReady(matchID, actingPlayerID string) (*ReadyResult, error)
	// SubmitScore stores both scores, the provisional winner and the reward
	// amounts. Stats are untouched until both parties agree.
	SubmitScore(matchID, actingPlayerID string, score1, score2 int) error
	// Agree sets the acting player's agreement flag and, if it is the second
	// one, completes the match and settles stats exactly once.
	Agree(matchID, actingPlayerID string) (*AgreeResult, error)
	// Dispute parks the match for manual resolution. No rewards settle.
	Dispute(matchID, actingPlayerID string) error
	// Decline rejects a pending challenge; only the challenged player may.
	Decline(matchID, actingPlayerID string) error
	// Cancel withdraws a pending challenge; only the challenger may.
	Cancel(matchID, actingPlayerID string) error
}
