package http

import (
	"net/http"

	"github.com/courtsidehq/courtside/internal/challenge"
	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/match"
	"github.com/courtsidehq/courtside/internal/metrics"
	"github.com/courtsidehq/courtside/internal/notifier"
	"github.com/courtsidehq/courtside/internal/presence"
	"github.com/courtsidehq/courtside/internal/pubsub"
	"github.com/courtsidehq/courtside/internal/ranking"
	"github.com/courtsidehq/courtside/internal/reference"
	"github.com/courtsidehq/courtside/internal/session"
	"github.com/courtsidehq/courtside/internal/stats"
)

type Server struct {
	Matches        match.Lifecycle
	Presence       presence.Tracker
	Ranking        ranking.Service
	Challenges     challenge.Recorder
	Reference      reference.Store
	Stats          stats.Store
	Sessions       session.Resolver
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Notifier       notifier.Notifier
	Cfg            config.Config
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
