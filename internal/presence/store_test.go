package presence_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/courtsidehq/courtside/internal/database"
	"github.com/courtsidehq/courtside/internal/presence"
	"github.com/courtsidehq/courtside/internal/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	venueLat = 41.3809
	venueLng = 2.1228
)

// setupTestDB creates a temporary in-memory SQLite database with two venues,
// one of which has no recorded coordinates.
func setupTestDB(t *testing.T) (presence.Tracker, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO venues (id, name, city_id, city_name, country_id, country_name, lat, lng)
		VALUES ('venue-1', 'Main Court', 'city-1', 'Barcelona', 'country-1', 'Spain', ?, ?);
		INSERT INTO venues (id, name, city_id, city_name, country_id, country_name, lat, lng)
		VALUES ('venue-nocoords', 'Pop-up Court', 'city-1', 'Barcelona', 'country-1', 'Spain', NULL, NULL);
		INSERT INTO players (id, name, home_venue_id) VALUES
			('p1', 'Alice', 'venue-1'),
			('p2', 'Bob', 'venue-1');
	`, venueLat, venueLng)
	require.NoError(t, err)

	tracker := presence.New(db, reference.New(db))
	teardown := func() {
		dbTeardown()
		db.Close()
	}
	return tracker, db, teardown
}

func TestCheckInAndStatus(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	status, err := tracker.GetStatus("p1", "venue-1")
	require.NoError(t, err)
	assert.False(t, status.IsCheckedIn)
	assert.Nil(t, status.LastSeenAt)

	err = tracker.CheckIn("p1", "venue-1", venueLat, venueLng)
	require.NoError(t, err)

	status, err = tracker.GetStatus("p1", "venue-1")
	require.NoError(t, err)
	assert.True(t, status.IsCheckedIn)
	require.NotNil(t, status.LastSeenAt)
}

func TestCheckIn_TooFar(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	// Roughly 1.1 km north of the venue.
	err := tracker.CheckIn("p1", "venue-1", venueLat+0.01, venueLng)
	var tooFar *presence.TooFarError
	require.ErrorAs(t, err, &tooFar)
	assert.Greater(t, tooFar.DistanceKm, presence.MaxCheckInRadiusKm)

	status, err := tracker.GetStatus("p1", "venue-1")
	require.NoError(t, err)
	assert.False(t, status.IsCheckedIn)
}

func TestCheckIn_WithinRadius(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	// Roughly 330 m north of the venue, inside the 500 m limit.
	err := tracker.CheckIn("p1", "venue-1", venueLat+0.003, venueLng)
	require.NoError(t, err)
}

func TestCheckIn_VenueWithoutCoordinates(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	// No coordinates on record means no distance gate.
	err := tracker.CheckIn("p1", "venue-nocoords", 0, 0)
	require.NoError(t, err)
}

func TestCheckIn_UnknownVenue(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	err := tracker.CheckIn("p1", "no-such-venue", venueLat, venueLng)
	assert.ErrorIs(t, err, reference.ErrNotFound)
}

func TestCheckIn_SwitchingVenueMovesRecord(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, tracker.CheckIn("p1", "venue-1", venueLat, venueLng))
	require.NoError(t, tracker.CheckIn("p1", "venue-nocoords", 0, 0))

	status, err := tracker.GetStatus("p1", "venue-1")
	require.NoError(t, err)
	assert.False(t, status.IsCheckedIn, "a player is present at one venue at a time")

	status, err = tracker.GetStatus("p1", "venue-nocoords")
	require.NoError(t, err)
	assert.True(t, status.IsCheckedIn)
}

func TestCheckOut(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, tracker.CheckIn("p1", "venue-1", venueLat, venueLng))
	require.NoError(t, tracker.CheckOut("p1", "venue-1"))

	status, err := tracker.GetStatus("p1", "venue-1")
	require.NoError(t, err)
	assert.False(t, status.IsCheckedIn)

	// Checking out while not checked in is a no-op.
	require.NoError(t, tracker.CheckOut("p1", "venue-1"))
}

func TestHeartbeat(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	err := tracker.Heartbeat("p1", "venue-1", venueLat, venueLng)
	assert.ErrorIs(t, err, presence.ErrNotCheckedIn)

	require.NoError(t, tracker.CheckIn("p1", "venue-1", venueLat, venueLng))
	require.NoError(t, tracker.Heartbeat("p1", "venue-1", venueLat+0.001, venueLng))

	players, err := tracker.ListActiveAtVenue("venue-1")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.InDelta(t, venueLat+0.001, players[0].Lat, 1e-9)
}

func TestCleanupStale(t *testing.T) {
	tracker, db, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, tracker.CheckIn("p1", "venue-1", venueLat, venueLng))
	require.NoError(t, tracker.CheckIn("p2", "venue-1", venueLat, venueLng))

	// Age one record past the threshold.
	staleAt := time.Now().Add(-3 * time.Hour).Unix()
	_, err := db.Exec("UPDATE active_players SET last_seen_at = ? WHERE player_id = 'p1'", staleAt)
	require.NoError(t, err)

	evicted, err := tracker.CleanupStale(2 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, evicted)

	players, err := tracker.ListActiveAtVenue("venue-1")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "p2", players[0].PlayerID)

	// A second sweep finds nothing.
	evicted, err = tracker.CleanupStale(2 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, evicted)
}

func TestListActiveAtVenue(t *testing.T) {
	tracker, _, teardown := setupTestDB(t)
	defer teardown()

	players, err := tracker.ListActiveAtVenue("venue-1")
	require.NoError(t, err)
	assert.Empty(t, players)

	require.NoError(t, tracker.CheckIn("p1", "venue-1", venueLat, venueLng))
	require.NoError(t, tracker.CheckIn("p2", "venue-1", venueLat, venueLng))

	players, err = tracker.ListActiveAtVenue("venue-1")
	require.NoError(t, err)
	assert.Len(t, players, 2)
	assert.Equal(t, "venue-1", players[0].VenueID)
	assert.NotEmpty(t, players[0].PlayerName)
}

func TestDistanceKm(t *testing.T) {
	// Barcelona to Madrid is roughly 505 km.
	d := presence.DistanceKm(41.3874, 2.1686, 40.4168, -3.7038)
	assert.InDelta(t, 505, d, 10)

	assert.Zero(t, presence.DistanceKm(venueLat, venueLng, venueLat, venueLng))
}
