package rewards_test

import (
	"testing"

	"github.com/courtsidehq/courtside/internal/rewards"
	"github.com/stretchr/testify/assert"
)

func TestForChallenge(t *testing.T) {
	tests := []struct {
		name       string
		baseXP     int
		baseRP     int
		difficulty rewards.Difficulty
		score      int
		max        int
		want       rewards.Reward
	}{
		{"perfect hard attempt", 100, 20, rewards.DifficultyHard, 10, 10, rewards.Reward{XP: 200, RP: 20}},
		{"partial easy attempt below threshold", 100, 20, rewards.DifficultyEasy, 7, 10, rewards.Reward{XP: 70, RP: 0}},
		{"medium attempt at threshold", 100, 20, rewards.DifficultyMedium, 8, 10, rewards.Reward{XP: 120, RP: 20}},
		{"just under threshold pays no rp", 100, 20, rewards.DifficultyMedium, 79, 100, rewards.Reward{XP: 119, RP: 0}},
		{"unknown difficulty uses 1.0 multiplier", 100, 20, rewards.Difficulty("brutal"), 10, 10, rewards.Reward{XP: 100, RP: 20}},
		{"zero max value yields nothing", 100, 20, rewards.DifficultyHard, 5, 0, rewards.Reward{XP: 0, RP: 0}},
		{"zero score", 100, 20, rewards.DifficultyEasy, 0, 10, rewards.Reward{XP: 0, RP: 0}},
		{"xp rounds to nearest", 100, 0, rewards.DifficultyEasy, 1, 3, rewards.Reward{XP: 33, RP: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewards.ForChallenge(tt.baseXP, tt.baseRP, tt.difficulty, tt.score, tt.max)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, rewards.Multiplier(rewards.DifficultyEasy))
	assert.Equal(t, 1.5, rewards.Multiplier(rewards.DifficultyMedium))
	assert.Equal(t, 2.0, rewards.Multiplier(rewards.DifficultyHard))
	assert.Equal(t, 1.0, rewards.Multiplier(rewards.Difficulty("nope")))
}

func TestMatchRewards(t *testing.T) {
	assert.Equal(t, rewards.Reward{XP: 100, RP: 20}, rewards.ForMatchWinner())
	assert.Equal(t, rewards.Reward{XP: 25, RP: 0}, rewards.ForMatchLoser())
}
