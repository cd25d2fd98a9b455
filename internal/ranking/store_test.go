package ranking_test

import (
	"database/sql"
	"testing"

	"github.com/courtsidehq/courtside/internal/database"
	"github.com/courtsidehq/courtside/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database with venues in
// two cities and a stats ledger for five players.
func setupTestDB(t *testing.T) (ranking.Service, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO venues (id, name, city_id, city_name, country_id, country_name, lat, lng) VALUES
			('venue-1', 'Main Court', 'city-bcn', 'Barcelona', 'country-es', 'Spain', 41.38, 2.12),
			('venue-2', 'Beach Court', 'city-bcn', 'Barcelona', 'country-es', 'Spain', 41.39, 2.19),
			('venue-3', 'Park Court', 'city-mad', 'Madrid', 'country-es', 'Spain', 40.41, -3.70);
		INSERT INTO sports (id, name) VALUES ('sport-1', 'Basketball');
		INSERT INTO players (id, name, home_venue_id) VALUES
			('p1', 'Alice', 'venue-1'),
			('p2', 'Bob', 'venue-1'),
			('p3', 'Carol', 'venue-1'),
			('p4', 'Dave', 'venue-2'),
			('p5', 'Eve', 'venue-3');
		INSERT INTO player_stats (player_id, sport_id, total_xp) VALUES
			('p1', 'sport-1', 500),
			('p2', 'sport-1', 500),
			('p3', 'sport-1', 300),
			('p4', 'sport-1', 800),
			('p5', 'sport-1', 900);
	`)
	require.NoError(t, err)

	svc := ranking.New(db)
	teardown := func() {
		dbTeardown()
		db.Close()
	}
	return svc, db, teardown
}

func TestLeaderboard_CompetitionRanking(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	lb, err := svc.Leaderboard(ranking.LevelVenue, "venue-1", "sport-1", "p3", 0)
	require.NoError(t, err)

	assert.Equal(t, ranking.LevelVenue, lb.Level)
	assert.Equal(t, "Main Court", lb.Location)
	assert.Equal(t, 3, lb.TotalPlayers)
	require.Len(t, lb.Rankings, 3)

	// XP 500, 500, 300: the tie shares rank 1 and the next rank skips to 3.
	assert.Equal(t, 1, lb.Rankings[0].Rank)
	assert.Equal(t, 1, lb.Rankings[1].Rank)
	assert.Equal(t, 3, lb.Rankings[2].Rank)
	assert.True(t, lb.Rankings[0].IsKing)
	assert.True(t, lb.Rankings[1].IsKing)
	assert.False(t, lb.Rankings[2].IsKing)

	// Ties break alphabetically for display order.
	assert.Equal(t, "Alice", lb.Rankings[0].PlayerName)
	assert.Equal(t, "Bob", lb.Rankings[1].PlayerName)

	require.NotNil(t, lb.King)
	assert.Equal(t, "p1", lb.King.PlayerID)

	require.NotNil(t, lb.CurrentUser)
	assert.Equal(t, "p3", lb.CurrentUser.PlayerID)
	assert.Equal(t, 3, lb.CurrentUser.Rank)
}

func TestLeaderboard_CityAndCountryScopes(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	lb, err := svc.Leaderboard(ranking.LevelCity, "city-bcn", "sport-1", "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, "Barcelona", lb.Location)
	assert.Equal(t, 4, lb.TotalPlayers)
	assert.Equal(t, "p4", lb.Rankings[0].PlayerID)

	lb, err = svc.Leaderboard(ranking.LevelCountry, "country-es", "sport-1", "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, "Spain", lb.Location)
	assert.Equal(t, 5, lb.TotalPlayers)
	assert.Equal(t, "p5", lb.Rankings[0].PlayerID)
	assert.Equal(t, 1, lb.Rankings[0].Rank)
}

func TestLeaderboard_LimitKeepsCurrentUser(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	lb, err := svc.Leaderboard(ranking.LevelCountry, "country-es", "sport-1", "p3", 2)
	require.NoError(t, err)

	require.Len(t, lb.Rankings, 2)
	assert.Equal(t, 5, lb.TotalPlayers)

	// The requester sits outside the returned slice but still gets their entry.
	require.NotNil(t, lb.CurrentUser)
	assert.Equal(t, "p3", lb.CurrentUser.PlayerID)
	assert.Equal(t, 5, lb.CurrentUser.Rank)
}

func TestLeaderboard_EmptyScope(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	lb, err := svc.Leaderboard(ranking.LevelCity, "city-unknown", "sport-1", "p1", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, lb.TotalPlayers)
	assert.Empty(t, lb.Rankings)
	assert.Nil(t, lb.King)
	assert.Nil(t, lb.CurrentUser)
	// Unknown scopes fall back to the raw id for display.
	assert.Equal(t, "city-unknown", lb.Location)
}

func TestLeaderboard_InvalidLevel(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := svc.Leaderboard(ranking.Level("galaxy"), "scope", "sport-1", "p1", 0)
	assert.ErrorIs(t, err, ranking.ErrInvalidLevel)
}
