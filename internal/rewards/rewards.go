package rewards

import "math"

// Difficulty labels a challenge. Unknown labels fall back to the easy multiplier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Reward is the amount of XP and RP credited for a single attempt or match.
type Reward struct {
	XP int `json:"xpEarned"`
	RP int `json:"rpEarned"`
}

// Fixed match reward amounts. The loser amounts double as the participation
// reward for a draw: both players receive LoserXP/LoserRP and neither a win.
const (
	WinnerXP = 100
	WinnerRP = 20
	LoserXP  = 25
	LoserRP  = 0
)

// rpThreshold is the minimum accuracy for an attempt to pay out any RP at all.
const rpThreshold = 0.80

// Multiplier returns the XP multiplier for a difficulty label.
func Multiplier(d Difficulty) float64 {
	switch d {
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// Accuracy is the fraction of the maximum achievable value that was scored.
// A zero maxValue yields zero accuracy rather than a division by zero.
func Accuracy(scoreValue, maxValue int) float64 {
	if maxValue == 0 {
		return 0
	}
	return float64(scoreValue) / float64(maxValue)
}

// ForChallenge computes the reward for a challenge attempt. XP scales with
// accuracy and difficulty; RP is all-or-nothing at the accuracy threshold.
func ForChallenge(baseXP, baseRP int, difficulty Difficulty, scoreValue, maxValue int) Reward {
	accuracy := Accuracy(scoreValue, maxValue)
	r := Reward{
		XP: int(math.Round(float64(baseXP) * accuracy * Multiplier(difficulty))),
	}
	if accuracy >= rpThreshold {
		r.RP = baseRP
	}
	return r
}

// ForMatchWinner returns the fixed reward for winning a match.
func ForMatchWinner() Reward {
	return Reward{XP: WinnerXP, RP: WinnerRP}
}

// ForMatchLoser returns the participation reward for the non-winner.
func ForMatchLoser() Reward {
	return Reward{XP: LoserXP, RP: LoserRP}
}
