package ranking

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalidLevel rejects a scope level outside venue/city/country.
var ErrInvalidLevel = errors.New("invalid ranking level")

// DefaultLimit caps the number of returned entries when the caller does not
// ask for a specific slice size.
const DefaultLimit = 50

var _ Service = (*store)(nil)

// New creates a new ranking Service.
func New(db *sql.DB) Service {
	return &store{db: db}
}

func (s *store) Leaderboard(level Level, scopeID, sportID, currentPlayerID string, limit int) (*Leaderboard, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var scopeCol string
	switch level {
	case LevelVenue:
		scopeCol = "v.id"
	case LevelCity:
		scopeCol = "v.city_id"
	case LevelCountry:
		scopeCol = "v.country_id"
	}

	// Players belong to a scope through their home venue.
	rows, err := s.db.Query(`
		SELECT ps.player_id, p.name, ps.total_xp
		FROM player_stats ps
		JOIN players p ON p.id = ps.player_id
		JOIN venues v ON v.id = p.home_venue_id
		WHERE ps.sport_id = ? AND `+scopeCol+` = ?
		ORDER BY ps.total_xp DESC, p.name ASC
	`, sportID, scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.XP); err != nil {
			log.Error("Failed to scan leaderboard row", "error", err)
			continue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}

	assignRanks(entries)

	lb := &Leaderboard{
		Level:        level,
		SportID:      sportID,
		Location:     s.locationName(level, scopeID),
		TotalPlayers: len(entries),
		Rankings:     []Entry{},
	}

	for i := range entries {
		if entries[i].Rank == 1 && lb.King == nil {
			king := entries[i]
			lb.King = &king
		}
		if entries[i].PlayerID == currentPlayerID {
			me := entries[i]
			lb.CurrentUser = &me
		}
		if i < limit {
			lb.Rankings = append(lb.Rankings, entries[i])
		}
	}
	return lb, nil
}

// assignRanks applies standard competition ranking to an XP-descending slice:
// tied players share a rank and the sequence skips values after a tie.
func assignRanks(entries []Entry) {
	for i := range entries {
		if i > 0 && entries[i].XP == entries[i-1].XP {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
		entries[i].IsKing = entries[i].Rank == 1
	}
}

// locationName resolves a display name for the scope. An unknown scope falls
// back to its raw id so an empty leaderboard still reads sensibly.
func (s *store) locationName(level Level, scopeID string) string {
	var query string
	switch level {
	case LevelVenue:
		query = "SELECT name FROM venues WHERE id = ? LIMIT 1"
	case LevelCity:
		query = "SELECT city_name FROM venues WHERE city_id = ? LIMIT 1"
	case LevelCountry:
		query = "SELECT country_name FROM venues WHERE country_id = ? LIMIT 1"
	}

	var name string
	if err := s.db.QueryRow(query, scopeID).Scan(&name); err != nil {
		if err != sql.ErrNoRows {
			log.Error("Failed to resolve scope name", "error", err, "level", level, "scopeID", scopeID)
		}
		return scopeID
	}
	return name
}
