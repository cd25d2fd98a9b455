package challenge

import (
	"database/sql"
	"sync"

	"github.com/courtsidehq/courtside/internal/reference"
	"github.com/courtsidehq/courtside/internal/stats"
)

// recorder persists challenge attempts and settles their rewards.
type recorder struct {
	db    *sql.DB
	refs  reference.Store
	stats stats.Store
	mu    sync.Mutex
}

// Result is what one recorded attempt earned.
type Result struct {
	XPEarned int     `json:"xpEarned"`
	RPEarned int     `json:"rpEarned"`
	Accuracy float64 `json:"-"`
}

// AccuracyPercent is the attempt's accuracy as a rounded whole percentage,
// for response messages.
func (r *Result) AccuracyPercent() int {
	return int(r.Accuracy*100 + 0.5)
}
