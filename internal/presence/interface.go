package presence

import "time"

// Tracker manages which players are physically present at which venue.
type Tracker interface {
	// CheckIn creates or refreshes the player's single active-presence record.
	// Checking in at a new venue replaces any record at the old one.
	CheckIn(playerID, venueID string, lat, lng float64) error
	// CheckOut removes the record. It is a no-op if the player was not
	// checked in at the venue.
	CheckOut(playerID, venueID string) error
	GetStatus(playerID, venueID string) (*Status, error)
	// Heartbeat refreshes position and last-seen time on an existing record.
	Heartbeat(playerID, venueID string, lat, lng float64) error
	// CleanupStale evicts records not refreshed within the threshold and
	// returns how many were removed.
	CleanupStale(threshold time.Duration) (int, error)
	// ListActiveAtVenue returns the pool of players currently live at a venue.
	ListActiveAtVenue(venueID string) ([]ActivePlayer, error)
}
