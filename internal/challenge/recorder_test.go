package challenge_test

import (
	"database/sql"
	"testing"

	"github.com/courtsidehq/courtside/internal/challenge"
	"github.com/courtsidehq/courtside/internal/database"
	"github.com/courtsidehq/courtside/internal/reference"
	"github.com/courtsidehq/courtside/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database with one player
// and two challenges of different difficulty.
func setupTestDB(t *testing.T) (challenge.Recorder, stats.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO venues (id, name, city_id, city_name, country_id, country_name)
		VALUES ('venue-1', 'Main Court', 'city-1', 'Barcelona', 'country-1', 'Spain');
		INSERT INTO sports (id, name) VALUES ('sport-1', 'Basketball');
		INSERT INTO players (id, name, home_venue_id) VALUES ('p1', 'Alice', 'venue-1');
		INSERT INTO challenges (id, sport_id, name, difficulty, base_xp, base_rp) VALUES
			('ch-easy', 'sport-1', 'Free Throw 10', 'easy', 100, 20),
			('ch-hard', 'sport-1', 'Three Point Contest', 'hard', 100, 20);
	`)
	require.NoError(t, err)

	statsStore := stats.New(db)
	recorder := challenge.New(db, reference.New(db), statsStore)
	teardown := func() {
		dbTeardown()
		db.Close()
	}
	return recorder, statsStore, db, teardown
}

func TestRecordAttempt_PerfectHard(t *testing.T) {
	recorder, statsStore, db, teardown := setupTestDB(t)
	defer teardown()

	result, err := recorder.RecordAttempt("p1", "ch-hard", 10, 10)
	require.NoError(t, err)

	// Hard doubles the base XP; full accuracy clears the RP threshold.
	assert.Equal(t, 200, result.XPEarned)
	assert.Equal(t, 20, result.RPEarned)
	assert.Equal(t, 100, result.AccuracyPercent())

	ps, err := statsStore.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, 1, ps.ChallengesCompleted)
	assert.Equal(t, 200, ps.TotalXP)
	assert.Equal(t, 20, ps.TotalRP)

	var attempts int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM challenge_attempts WHERE player_id = 'p1'").Scan(&attempts))
	assert.Equal(t, 1, attempts)
}

func TestRecordAttempt_PartialEasy(t *testing.T) {
	recorder, _, _, teardown := setupTestDB(t)
	defer teardown()

	result, err := recorder.RecordAttempt("p1", "ch-easy", 7, 10)
	require.NoError(t, err)

	// 70% accuracy scales the XP and is below the RP threshold.
	assert.Equal(t, 70, result.XPEarned)
	assert.Equal(t, 0, result.RPEarned)
	assert.Equal(t, 70, result.AccuracyPercent())
}

func TestRecordAttempt_ZeroMax(t *testing.T) {
	recorder, _, _, teardown := setupTestDB(t)
	defer teardown()

	result, err := recorder.RecordAttempt("p1", "ch-easy", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.XPEarned)
	assert.Equal(t, 0, result.RPEarned)
}

func TestRecordAttempt_Validation(t *testing.T) {
	recorder, _, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := recorder.RecordAttempt("p1", "ch-easy", -1, 10)
	assert.ErrorIs(t, err, challenge.ErrNegativeValue)

	_, err = recorder.RecordAttempt("p1", "ch-easy", 11, 10)
	assert.ErrorIs(t, err, challenge.ErrScoreExceedsMax)

	_, err = recorder.RecordAttempt("p1", "no-such-challenge", 5, 10)
	assert.ErrorIs(t, err, reference.ErrNotFound)
}

func TestRecordAttempt_RepeatAccumulates(t *testing.T) {
	recorder, statsStore, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := recorder.RecordAttempt("p1", "ch-easy", 10, 10)
	require.NoError(t, err)
	_, err = recorder.RecordAttempt("p1", "ch-easy", 5, 10)
	require.NoError(t, err)

	ps, err := statsStore.Get("p1", "sport-1")
	require.NoError(t, err)
	assert.Equal(t, 2, ps.ChallengesCompleted)
	assert.Equal(t, 150, ps.TotalXP)
}
