package stats

import "github.com/courtsidehq/courtside/internal/rewards"

// Store defines the write path of the stats ledger plus the read used for
// player profiles. Ranking reads its own scope-filtered snapshots.
type Store interface {
	// CreditMatchOutcome increments the match counters and credits the reward
	// on the given executor. Pass won=false, lost=false for a draw.
	CreditMatchOutcome(ex Execer, playerID, sportID string, won, lost bool, r rewards.Reward) error
	// CreditChallenge increments challenges_completed and credits the reward.
	CreditChallenge(ex Execer, playerID, sportID string, r rewards.Reward) error
	// SpendRP debits spendable RP, rejecting overdrafts.
	SpendRP(playerID, sportID string, amount int) error
	Get(playerID, sportID string) (*PlayerStats, error)
}
