package challenge

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/courtside/internal/reference"
	"github.com/courtsidehq/courtside/internal/rewards"
	"github.com/courtsidehq/courtside/internal/stats"
	"github.com/google/uuid"
)

var (
	// ErrNegativeValue rejects negative scores or maximums.
	ErrNegativeValue = errors.New("score and max value must be non-negative")
	// ErrScoreExceedsMax rejects a score above the attempt's maximum.
	ErrScoreExceedsMax = errors.New("score value cannot exceed max value")
)

var _ Recorder = (*recorder)(nil)

// New creates a new attempt Recorder.
func New(db *sql.DB, refs reference.Store, statsStore stats.Store) Recorder {
	return &recorder{db: db, refs: refs, stats: statsStore}
}

func (r *recorder) RecordAttempt(playerID, challengeID string, scoreValue, maxValue int) (*Result, error) {
	if scoreValue < 0 || maxValue < 0 {
		return nil, ErrNegativeValue
	}
	if scoreValue > maxValue {
		return nil, ErrScoreExceedsMax
	}

	ch, err := r.refs.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}

	reward := rewards.ForChallenge(ch.BaseXP, ch.BaseRP, ch.Difficulty, scoreValue, maxValue)

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO challenge_attempts (id, challenge_id, player_id, score_value, max_value, xp_earned, rp_earned, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), challengeID, playerID, scoreValue, maxValue, reward.XP, reward.RP, time.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	if err := r.stats.CreditChallenge(tx, playerID, ch.SportID, reward); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attempt: %w", err)
	}

	result := &Result{
		XPEarned: reward.XP,
		RPEarned: reward.RP,
		Accuracy: rewards.Accuracy(scoreValue, maxValue),
	}
	log.Info("Recorded challenge attempt", "playerID", playerID, "challengeID", challengeID, "xp", result.XPEarned, "rp", result.RPEarned)
	return result, nil
}
