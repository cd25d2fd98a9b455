package reference

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when a reference id does not resolve.
var ErrNotFound = errors.New("not found")

// New creates a new reference Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) GetVenue(venueID string) (*Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var v Venue
	var lat, lng sql.NullFloat64
	err := s.db.QueryRow(`
		SELECT id, name, city_id, city_name, country_id, country_name, lat, lng
		FROM venues WHERE id = ?
	`, venueID).Scan(&v.ID, &v.Name, &v.CityID, &v.CityName, &v.CountryID, &v.CountryName, &lat, &lng)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("venue %s: %w", venueID, ErrNotFound)
		}
		log.Error("Failed to query venue", "error", err, "venueID", venueID)
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if lat.Valid && lng.Valid {
		v.Lat = &lat.Float64
		v.Lng = &lng.Float64
	}
	return &v, nil
}

func (s *store) GetSport(sportID string) (*Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sp Sport
	err := s.db.QueryRow("SELECT id, name FROM sports WHERE id = ?", sportID).Scan(&sp.ID, &sp.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("sport %s: %w", sportID, ErrNotFound)
		}
		log.Error("Failed to query sport", "error", err, "sportID", sportID)
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}
	return &sp, nil
}

func (s *store) GetChallenge(challengeID string) (*Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Challenge
	err := s.db.QueryRow(`
		SELECT id, sport_id, name, difficulty, base_xp, base_rp
		FROM challenges WHERE id = ?
	`, challengeID).Scan(&c.ID, &c.SportID, &c.Name, &c.Difficulty, &c.BaseXP, &c.BaseRP)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("challenge %s: %w", challengeID, ErrNotFound)
		}
		log.Error("Failed to query challenge", "error", err, "challengeID", challengeID)
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	return &c, nil
}

func (s *store) GetPlayerName(playerID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var name string
	err := s.db.QueryRow("SELECT name FROM players WHERE id = ?", playerID).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("player %s: %w", playerID, ErrNotFound)
		}
		return "", fmt.Errorf("failed to get player: %w", err)
	}
	return name, nil
}
