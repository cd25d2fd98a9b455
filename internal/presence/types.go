package presence

import (
	"database/sql"
	"sync"
	"time"

	"github.com/courtsidehq/courtside/internal/reference"
)

// store handles database operations for active-presence records.
type store struct {
	db   *sql.DB
	refs reference.Store
	mu   sync.RWMutex
}

// MaxCheckInRadiusKm is the server's hard limit for an explicit check-in at a
// venue with known coordinates, regardless of any client-side policy.
const MaxCheckInRadiusKm = 0.5

// ActivePlayer is one live presence record. At most one exists per player
// across all venues, enforced by the primary key on player_id.
type ActivePlayer struct {
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	VenueID    string    `json:"venue_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Status reports whether a player is currently checked in at a venue.
type Status struct {
	IsCheckedIn bool       `json:"isCheckedIn"`
	LastSeenAt  *time.Time `json:"lastSeenAt,omitempty"`
}

// Policy is the client-side hysteresis contract advertised to apps: auto
// check-in only inside AutoCheckInKm, auto check-out only beyond
// AutoCheckOutKm, heartbeats every HeartbeatSeconds while checked in. The gap
// between the two radii keeps GPS jitter from flapping the record.
type Policy struct {
	AutoCheckInKm    float64 `json:"autoCheckInKm"`
	AutoCheckOutKm   float64 `json:"autoCheckOutKm"`
	HeartbeatSeconds int     `json:"heartbeatSeconds"`
	CheckInRadiusKm  float64 `json:"checkInRadiusKm"`
}

// DefaultPolicy is what the server advertises on /presence/policy.
var DefaultPolicy = Policy{
	AutoCheckInKm:    0.2,
	AutoCheckOutKm:   0.3,
	HeartbeatSeconds: 60,
	CheckInRadiusKm:  MaxCheckInRadiusKm,
}
