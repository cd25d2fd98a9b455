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

func NewServer(
	matches match.Lifecycle,
	tracker presence.Tracker,
	rankingSvc ranking.Service,
	challenges challenge.Recorder,
	refs reference.Store,
	statsStore stats.Store,
	sessions session.Resolver,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	notifier notifier.Notifier,
	cfg config.Config,
	pubsub pubsub.PubSubClient,
) *Server {
	server := &Server{
		Matches:        matches,
		Presence:       tracker,
		Ranking:        rankingSvc,
		Challenges:     challenges,
		Reference:      refs,
		Stats:          statsStore,
		Sessions:       sessions,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Notifier:       notifier,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Player-facing routes additionally go through the session middleware,
	// which rejects requests without a resolvable bearer token.
	auth := func(h http.Handler) http.Handler {
		return Chain(h, loggingMiddleware, s.sessionMiddleware)
	}

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), loggingMiddleware))
	s.Router.Handle("GET /presence/policy", Chain(s.PresencePolicyHandler(), loggingMiddleware))
	s.Router.Handle("POST /presence/cleanup", Chain(s.PresenceCleanupHandler(), loggingMiddleware))

	s.Router.Handle("POST /matches", auth(s.CreateMatchHandler()))
	s.Router.Handle("GET /matches/{id}", auth(s.GetMatchHandler()))
	s.Router.Handle("POST /matches/{id}/ready", auth(s.ReadyHandler()))
	s.Router.Handle("POST /matches/{id}/score", auth(s.SubmitScoreHandler()))
	s.Router.Handle("POST /matches/{id}/agree", auth(s.AgreeHandler()))
	s.Router.Handle("POST /matches/{id}/dispute", auth(s.DisputeHandler()))
	s.Router.Handle("POST /matches/{id}/decline", auth(s.DeclineHandler()))
	s.Router.Handle("POST /matches/{id}/cancel", auth(s.CancelHandler()))

	s.Router.Handle("POST /challenges/{id}/attempts", auth(s.RecordAttemptHandler()))

	s.Router.Handle("GET /venues/{id}/checkin", auth(s.CheckInStatusHandler()))
	s.Router.Handle("POST /venues/{id}/checkin", auth(s.CheckInHandler()))
	s.Router.Handle("PATCH /venues/{id}/checkin", auth(s.HeartbeatHandler()))
	s.Router.Handle("DELETE /venues/{id}/checkin", auth(s.CheckOutHandler()))
	s.Router.Handle("GET /venues/{id}/players", auth(s.ActivePlayersHandler()))

	s.Router.Handle("GET /rankings", auth(s.RankingsHandler()))

	s.Router.Handle("GET /players/{id}/stats", auth(s.PlayerStatsHandler()))
	s.Router.Handle("POST /rp/spend", auth(s.SpendRPHandler()))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
