package stats_test

import (
	"database/sql"
	"testing"

	"github.com/courtsidehq/courtside/internal/database"
	"github.com/courtsidehq/courtside/internal/rewards"
	"github.com/courtsidehq/courtside/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (stats.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO venues (id, name, city_id, city_name, country_id, country_name)
		VALUES ('venue-1', 'Main Court', 'city-1', 'Barcelona', 'country-1', 'Spain');
		INSERT INTO sports (id, name) VALUES ('sport-1', 'Basketball');
		INSERT INTO players (id, name, home_venue_id) VALUES ('p1', 'Alice', 'venue-1');
	`)
	require.NoError(t, err)

	store := stats.New(db)
	teardown := func() {
		dbTeardown()
		db.Close()
	}
	return store, db, teardown
}

func TestGet_UnknownPlayerReturnsZeroLedger(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	ps, err := store.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, "p1", ps.PlayerID)
	assert.Equal(t, "sport-1", ps.SportID)
	assert.Zero(t, ps.MatchesPlayed)
	assert.Zero(t, ps.TotalXP)
}

func TestCreditMatchOutcome(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	err := store.CreditMatchOutcome(db, "p1", "sport-1", true, false, rewards.ForMatchWinner())
	require.NoError(t, err)

	ps, err := store.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, 1, ps.MatchesPlayed)
	assert.Equal(t, 1, ps.MatchesWon)
	assert.Equal(t, 0, ps.MatchesLost)
	assert.Equal(t, rewards.WinnerXP, ps.TotalXP)
	assert.Equal(t, rewards.WinnerRP, ps.TotalRP)
	assert.Equal(t, rewards.WinnerRP, ps.SpendableRP)

	// A second credit increments the existing row.
	err = store.CreditMatchOutcome(db, "p1", "sport-1", false, true, rewards.ForMatchLoser())
	require.NoError(t, err)

	ps, err = store.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, 2, ps.MatchesPlayed)
	assert.Equal(t, 1, ps.MatchesWon)
	assert.Equal(t, 1, ps.MatchesLost)
	assert.Equal(t, rewards.WinnerXP+rewards.LoserXP, ps.TotalXP)
}

func TestCreditMatchOutcome_Draw(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	err := store.CreditMatchOutcome(db, "p1", "sport-1", false, false, rewards.ForMatchLoser())
	require.NoError(t, err)

	ps, err := store.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, 1, ps.MatchesPlayed)
	assert.Zero(t, ps.MatchesWon)
	assert.Zero(t, ps.MatchesLost)
}

func TestCreditChallenge(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	err := store.CreditChallenge(db, "p1", "sport-1", rewards.Reward{XP: 70, RP: 10})
	require.NoError(t, err)

	ps, err := store.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, 1, ps.ChallengesCompleted)
	assert.Zero(t, ps.MatchesPlayed)
	assert.Equal(t, 70, ps.TotalXP)
	assert.Equal(t, 10, ps.TotalRP)
}

func TestSpendRP(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	err := store.CreditMatchOutcome(db, "p1", "sport-1", true, false, rewards.Reward{XP: 100, RP: 50})
	require.NoError(t, err)

	require.NoError(t, store.SpendRP("p1", "sport-1", 30))

	ps, err := store.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, 20, ps.SpendableRP)
	// Lifetime RP is untouched by spending.
	assert.Equal(t, 50, ps.TotalRP)

	err = store.SpendRP("p1", "sport-1", 21)
	assert.ErrorIs(t, err, stats.ErrInsufficientRP)

	ps, err = store.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, 20, ps.SpendableRP)
}

func TestSpendRP_NoLedger(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.SpendRP("p1", "sport-1", 10)
	assert.ErrorIs(t, err, stats.ErrInsufficientRP)
}
