package presence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/courtside/internal/reference"
)

// ErrNotCheckedIn is returned by Heartbeat when no live record exists; the
// caller must check in first.
var ErrNotCheckedIn = errors.New("not checked in")

// TooFarError rejects a check-in outside the venue's radius and carries the
// computed distance for the response payload.
type TooFarError struct {
	DistanceKm float64
}

func (e *TooFarError) Error() string {
	return fmt.Sprintf("too far from venue: %.2f km away (max %.1f km)", e.DistanceKm, MaxCheckInRadiusKm)
}

var _ Tracker = (*store)(nil)

// New creates a new presence Tracker.
func New(db *sql.DB, refs reference.Store) Tracker {
	return &store{db: db, refs: refs}
}

func (s *store) CheckIn(playerID, venueID string, lat, lng float64) error {
	venue, err := s.refs.GetVenue(venueID)
	if err != nil {
		return err
	}

	// Venues without coordinates on file accept any position.
	if venue.Lat != nil && venue.Lng != nil {
		distance := DistanceKm(lat, lng, *venue.Lat, *venue.Lng)
		if distance > MaxCheckInRadiusKm {
			return &TooFarError{DistanceKm: distance}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The conflict clause makes this the single-active-venue upsert: checking
	// in elsewhere moves the one record instead of creating a second.
	_, err = s.db.Exec(`
		INSERT INTO active_players (player_id, venue_id, lat, lng, last_seen_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			venue_id = excluded.venue_id,
			lat = excluded.lat,
			lng = excluded.lng,
			last_seen_at = excluded.last_seen_at;
	`, playerID, venueID, lat, lng, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to check in: %w", err)
	}
	log.Info("Player checked in", "playerID", playerID, "venueID", venueID)
	return nil
}

func (s *store) CheckOut(playerID, venueID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM active_players WHERE player_id = ? AND venue_id = ?", playerID, venueID)
	if err != nil {
		return fmt.Errorf("failed to check out: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		log.Debug("Check-out with no live record", "playerID", playerID, "venueID", venueID)
	} else {
		log.Info("Player checked out", "playerID", playerID, "venueID", venueID)
	}
	return nil
}

func (s *store) GetStatus(playerID, venueID string) (*Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lastSeen int64
	err := s.db.QueryRow(
		"SELECT last_seen_at FROM active_players WHERE player_id = ? AND venue_id = ?",
		playerID, venueID,
	).Scan(&lastSeen)
	if err != nil {
		if err == sql.ErrNoRows {
			return &Status{IsCheckedIn: false}, nil
		}
		return nil, fmt.Errorf("failed to get presence status: %w", err)
	}
	t := time.Unix(lastSeen, 0)
	return &Status{IsCheckedIn: true, LastSeenAt: &t}, nil
}

func (s *store) Heartbeat(playerID, venueID string, lat, lng float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE active_players SET lat = ?, lng = ?, last_seen_at = ?
		WHERE player_id = ? AND venue_id = ?
	`, lat, lng, time.Now().Unix(), playerID, venueID)
	if err != nil {
		return fmt.Errorf("failed to refresh presence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotCheckedIn
	}
	return nil
}

func (s *store) CleanupStale(threshold time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-threshold).Unix()
	res, err := s.db.Exec("DELETE FROM active_players WHERE last_seen_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up stale presence records: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected > 0 {
		log.Info("Evicted stale presence records", "count", affected, "threshold", threshold)
	}
	return int(affected), nil
}

func (s *store) ListActiveAtVenue(venueID string) ([]ActivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT ap.player_id, p.name, ap.venue_id, ap.lat, ap.lng, ap.last_seen_at
		FROM active_players ap
		JOIN players p ON p.id = ap.player_id
		WHERE ap.venue_id = ?
		ORDER BY ap.last_seen_at DESC
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active players: %w", err)
	}
	defer rows.Close()

	var players []ActivePlayer
	for rows.Next() {
		var ap ActivePlayer
		var lastSeen int64
		if err := rows.Scan(&ap.PlayerID, &ap.PlayerName, &ap.VenueID, &ap.Lat, &ap.Lng, &lastSeen); err != nil {
			log.Error("Failed to scan active player row", "error", err)
			continue
		}
		ap.LastSeenAt = time.Unix(lastSeen, 0)
		players = append(players, ap)
	}
	return players, rows.Err()
}
