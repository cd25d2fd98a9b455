package stats

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/courtside/internal/rewards"
)

// ErrInsufficientRP is returned when a debit would overdraw spendable RP.
var ErrInsufficientRP = errors.New("insufficient spendable RP")

// New creates a new stats Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

// creditQuery is the heart of the ledger: an insert that turns into an
// increment when the (player, sport) row already exists.
const creditQuery = `
	INSERT INTO player_stats (player_id, sport_id, matches_played, matches_won, matches_lost, challenges_completed, total_xp, total_rp, spendable_rp)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(player_id, sport_id) DO UPDATE SET
		matches_played = matches_played + excluded.matches_played,
		matches_won = matches_won + excluded.matches_won,
		matches_lost = matches_lost + excluded.matches_lost,
		challenges_completed = challenges_completed + excluded.challenges_completed,
		total_xp = total_xp + excluded.total_xp,
		total_rp = total_rp + excluded.total_rp,
		spendable_rp = spendable_rp + excluded.spendable_rp;
`

func (s *store) CreditMatchOutcome(ex Execer, playerID, sportID string, won, lost bool, r rewards.Reward) error {
	wonN, lostN := 0, 0
	if won {
		wonN = 1
	}
	if lost {
		lostN = 1
	}
	_, err := ex.Exec(creditQuery, playerID, sportID, 1, wonN, lostN, 0, r.XP, r.RP, r.RP)
	if err != nil {
		return fmt.Errorf("failed to credit match outcome for %s: %w", playerID, err)
	}
	log.Info("Credited match outcome", "playerID", playerID, "sportID", sportID, "won", won, "xp", r.XP, "rp", r.RP)
	return nil
}

func (s *store) CreditChallenge(ex Execer, playerID, sportID string, r rewards.Reward) error {
	_, err := ex.Exec(creditQuery, playerID, sportID, 0, 0, 0, 1, r.XP, r.RP, r.RP)
	if err != nil {
		return fmt.Errorf("failed to credit challenge for %s: %w", playerID, err)
	}
	log.Info("Credited challenge attempt", "playerID", playerID, "sportID", sportID, "xp", r.XP, "rp", r.RP)
	return nil
}

func (s *store) SpendRP(playerID, sportID string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE player_stats SET spendable_rp = spendable_rp - ?
		WHERE player_id = ? AND sport_id = ? AND spendable_rp >= ?
	`, amount, playerID, sportID, amount)
	if err != nil {
		return fmt.Errorf("failed to spend RP: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrInsufficientRP
	}
	return nil
}

func (s *store) Get(playerID, sportID string) (*PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ps := PlayerStats{PlayerID: playerID, SportID: sportID}
	err := s.db.QueryRow(`
		SELECT matches_played, matches_won, matches_lost, challenges_completed, total_xp, total_rp, spendable_rp
		FROM player_stats WHERE player_id = ? AND sport_id = ?
	`, playerID, sportID).Scan(
		&ps.MatchesPlayed, &ps.MatchesWon, &ps.MatchesLost,
		&ps.ChallengesCompleted, &ps.TotalXP, &ps.TotalRP, &ps.SpendableRP,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// A player with no settled history has an all-zero ledger.
			return &ps, nil
		}
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}
	return &ps, nil
}
