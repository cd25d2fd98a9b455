package reference

import (
	"database/sql"
	"sync"

	"github.com/courtsidehq/courtside/internal/rewards"
)

// store handles read access to the reference tables.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Venue is a physical location players compete at. Coordinates are optional;
// venues without them accept check-ins from any position.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CityID      string   `json:"city_id"`
	CityName    string   `json:"city_name"`
	CountryID   string   `json:"country_id"`
	CountryName string   `json:"country_name"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// Sport is a discipline matches and challenges are played in.
type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Challenge is a solo skill drill with fixed base rewards.
type Challenge struct {
	ID         string             `json:"id"`
	SportID    string             `json:"sport_id"`
	Name       string             `json:"name"`
	Difficulty rewards.Difficulty `json:"difficulty"`
	BaseXP     int                `json:"base_xp"`
	BaseRP     int                `json:"base_rp"`
}
