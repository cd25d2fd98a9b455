package match

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/courtside/internal/reference"
	"github.com/courtsidehq/courtside/internal/rewards"
	"github.com/courtsidehq/courtside/internal/stats"
	"github.com/google/uuid"
)

var _ Lifecycle = (*store)(nil)

// New creates a new match Lifecycle.
func New(db *sql.DB, refs reference.Store, statsStore stats.Store) Lifecycle {
	return &store{db: db, refs: refs, stats: statsStore}
}

func (s *store) Create(actingPlayerID, opponentID, venueID, sportID string) (string, error) {
	if actingPlayerID == opponentID {
		return "", ErrSelfChallenge
	}
	if _, err := s.refs.GetVenue(venueID); err != nil {
		return "", err
	}
	if _, err := s.refs.GetSport(sportID); err != nil {
		return "", err
	}
	if _, err := s.refs.GetPlayerName(opponentID); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The unordered pair may be stored in either column order.
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM matches
			WHERE status = ?
			AND ((player1_id = ? AND player2_id = ?) OR (player1_id = ? AND player2_id = ?))
		)
	`, StatusPending, actingPlayerID, opponentID, opponentID, actingPlayerID).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("failed to check for pending match: %w", err)
	}
	if exists {
		return "", ErrDuplicatePending
	}

	id := uuid.New().String()
	_, err = s.db.Exec(`
		INSERT INTO matches (id, venue_id, sport_id, player1_id, player2_id, status, winner_xp, winner_rp, loser_xp, loser_rp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, venueID, sportID, actingPlayerID, opponentID, StatusPending,
		rewards.WinnerXP, rewards.WinnerRP, rewards.LoserXP, rewards.LoserRP, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("Created match", "matchID", id, "player1", actingPlayerID, "player2", opponentID, "venueID", venueID, "sportID", sportID)
	return id, nil
}

func (s *store) Get(matchID string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getMatch(s.db, matchID)
}

func (s *store) MarkReady(matchID, actingPlayerID string) (*ReadyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := getMatch(tx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.IsParticipant(actingPlayerID) {
		return nil, ErrNotParticipant
	}
	if m.Status != StatusPending {
		return nil, fmt.Errorf("%w: cannot mark ready while %s", ErrWrongState, m.Status)
	}

	readyCol := "player1_ready"
	if actingPlayerID == m.Player2ID {
		readyCol = "player2_ready"
	}
	if _, err := tx.Exec("UPDATE matches SET "+readyCol+" = 1 WHERE id = ?", matchID); err != nil {
		return nil, fmt.Errorf("failed to mark ready: %w", err)
	}

	// Both participants must be ready before the match starts.
	res, err := tx.Exec(`
		UPDATE matches SET status = ?, started_at = ?
		WHERE id = ? AND status = ? AND player1_ready = 1 AND player2_ready = 1
	`, StatusInProgress, time.Now().Unix(), matchID, StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit readiness: %w", err)
	}

	started := affected == 1
	log.Info("Marked player ready", "matchID", matchID, "playerID", actingPlayerID, "started", started)
	return &ReadyResult{Started: started}, nil
}

func (s *store) SubmitScore(matchID, actingPlayerID string, score1, score2 int) error {
	if score1 < 0 || score2 < 0 {
		return ErrNegativeScore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := getMatch(tx, matchID)
	if err != nil {
		return err
	}
	if !m.IsParticipant(actingPlayerID) {
		return ErrNotParticipant
	}
	if m.Status != StatusInProgress {
		return fmt.Errorf("%w: cannot submit scores while %s", ErrWrongState, m.Status)
	}

	// Higher score wins; equal scores leave the winner NULL for a draw.
	var winnerID any
	switch {
	case score1 > score2:
		winnerID = m.Player1ID
	case score2 > score1:
		winnerID = m.Player2ID
	}

	// A resubmission invalidates any agreement given for the previous scores.
	_, err = tx.Exec(`
		UPDATE matches SET player1_score = ?, player2_score = ?, winner_id = ?,
			player1_agreed = 0, player2_agreed = 0
		WHERE id = ?
	`, score1, score2, winnerID, matchID)
	if err != nil {
		return fmt.Errorf("failed to submit score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit score: %w", err)
	}
	log.Info("Submitted score", "matchID", matchID, "playerID", actingPlayerID, "score1", score1, "score2", score2)
	return nil
}

func (s *store) Agree(matchID, actingPlayerID string) (*AgreeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := getMatch(tx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.IsParticipant(actingPlayerID) {
		return nil, ErrNotParticipant
	}
	// A caller that lost the agreement race sees the already-completed match
	// and gets the same success response without re-crediting anything.
	if m.Status == StatusCompleted {
		return &AgreeResult{BothAgreed: true}, nil
	}
	if m.Status != StatusInProgress {
		return nil, fmt.Errorf("%w: cannot agree while %s", ErrWrongState, m.Status)
	}
	if m.Player1Score == nil || m.Player2Score == nil {
		return nil, ErrScoresNotSet
	}

	agreedCol := "player1_agreed"
	if actingPlayerID == m.Player2ID {
		agreedCol = "player2_agreed"
	}
	if _, err := tx.Exec("UPDATE matches SET "+agreedCol+" = 1 WHERE id = ?", matchID); err != nil {
		return nil, fmt.Errorf("failed to record agreement: %w", err)
	}

	// The conditional flip is the settlement gate: it succeeds for exactly one
	// caller, and only that caller credits the stats ledger.
	res, err := tx.Exec(`
		UPDATE matches SET status = ?, completed_at = ?
		WHERE id = ? AND player1_agreed = 1 AND player2_agreed = 1 AND status = ?
	`, StatusCompleted, time.Now().Unix(), matchID, StatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to complete match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	result := &AgreeResult{}
	if affected == 1 {
		result.BothAgreed = true
		result.Settled = true
		if err := s.settle(tx, m); err != nil {
			return nil, err
		}
		r := actingReward(m, actingPlayerID)
		result.Reward = &r
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit agreement: %w", err)
	}

	log.Info("Recorded agreement", "matchID", matchID, "playerID", actingPlayerID, "settled", result.Settled)
	return result, nil
}

// settle credits the stats ledger for a completed match. It runs inside the
// agreement transaction of the one caller whose conditional update succeeded.
func (s *store) settle(tx *sql.Tx, m *Match) error {
	if m.WinnerID != nil {
		loserID := m.Opponent(*m.WinnerID)
		if err := s.stats.CreditMatchOutcome(tx, *m.WinnerID, m.SportID, true, false, rewards.ForMatchWinner()); err != nil {
			return err
		}
		return s.stats.CreditMatchOutcome(tx, loserID, m.SportID, false, true, rewards.ForMatchLoser())
	}
	// Draw: both players get the participation amounts, neither a win or loss.
	if err := s.stats.CreditMatchOutcome(tx, m.Player1ID, m.SportID, false, false, rewards.ForMatchLoser()); err != nil {
		return err
	}
	return s.stats.CreditMatchOutcome(tx, m.Player2ID, m.SportID, false, false, rewards.ForMatchLoser())
}

func actingReward(m *Match, actingPlayerID string) rewards.Reward {
	if m.WinnerID != nil && *m.WinnerID == actingPlayerID {
		return rewards.ForMatchWinner()
	}
	return rewards.ForMatchLoser()
}

func (s *store) Dispute(matchID, actingPlayerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := getMatch(s.db, matchID)
	if err != nil {
		return err
	}
	if !m.IsParticipant(actingPlayerID) {
		return ErrNotParticipant
	}
	if m.Status != StatusInProgress && m.Status != StatusCompleted {
		return fmt.Errorf("%w: cannot dispute a %s match", ErrWrongState, m.Status)
	}

	_, err = s.db.Exec("UPDATE matches SET status = ? WHERE id = ? AND status IN (?, ?)",
		StatusDisputed, matchID, StatusInProgress, StatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to dispute match: %w", err)
	}
	log.Warn("Match disputed", "matchID", matchID, "playerID", actingPlayerID)
	return nil
}

func (s *store) Decline(matchID, actingPlayerID string) error {
	return s.resolvePending(matchID, actingPlayerID, StatusDeclined, false)
}

func (s *store) Cancel(matchID, actingPlayerID string) error {
	return s.resolvePending(matchID, actingPlayerID, StatusCancelled, true)
}

// resolvePending closes a pending match: the challenger may cancel, the
// challenged player may decline.
func (s *store) resolvePending(matchID, actingPlayerID string, to Status, byChallenger bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := getMatch(s.db, matchID)
	if err != nil {
		return err
	}
	if !m.IsParticipant(actingPlayerID) {
		return ErrNotParticipant
	}
	if byChallenger && actingPlayerID != m.Player1ID {
		return fmt.Errorf("%w: only the challenger can cancel", ErrNotAllowed)
	}
	if !byChallenger && actingPlayerID != m.Player2ID {
		return fmt.Errorf("%w: only the challenged player can decline", ErrNotAllowed)
	}
	if m.Status != StatusPending {
		return fmt.Errorf("%w: cannot move a %s match to %s", ErrWrongState, m.Status, to)
	}

	if _, err := s.db.Exec("UPDATE matches SET status = ? WHERE id = ? AND status = ?", to, matchID, StatusPending); err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	log.Info("Resolved pending match", "matchID", matchID, "status", to)
	return nil
}

// queryer lets getMatch run against either the pool or a transaction.
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

func getMatch(q queryer, matchID string) (*Match, error) {
	var m Match
	var p1Score, p2Score sql.NullInt64
	var winnerID sql.NullString
	var createdAt int64
	var startedAt, completedAt sql.NullInt64

	err := q.QueryRow(`
		SELECT id, venue_id, sport_id, player1_id, player2_id, status,
			player1_score, player2_score, winner_id,
			winner_xp, winner_rp, loser_xp, loser_rp,
			player1_ready, player2_ready, player1_agreed, player2_agreed,
			created_at, started_at, completed_at
		FROM matches WHERE id = ?
	`, matchID).Scan(
		&m.ID, &m.VenueID, &m.SportID, &m.Player1ID, &m.Player2ID, &m.Status,
		&p1Score, &p2Score, &winnerID,
		&m.WinnerXP, &m.WinnerRP, &m.LoserXP, &m.LoserRP,
		&m.Player1Ready, &m.Player2Ready, &m.Player1Agreed, &m.Player2Agreed,
		&createdAt, &startedAt, &completedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if p1Score.Valid {
		v := int(p1Score.Int64)
		m.Player1Score = &v
	}
	if p2Score.Valid {
		v := int(p2Score.Int64)
		m.Player2Score = &v
	}
	if winnerID.Valid {
		m.WinnerID = &winnerID.String
	}
	m.CreatedAt = time.Unix(createdAt, 0)
	if startedAt.Valid {
		t := time.Unix(startedAt.Int64, 0)
		m.StartedAt = &t
	}
	if completedAt.Valid {
		t := time.Unix(completedAt.Int64, 0)
		m.CompletedAt = &t
	}
	return &m, nil
}
