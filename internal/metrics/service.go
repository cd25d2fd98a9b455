package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_matches_created_total",
			Help: "The total number of matches created.",
		}),
		MatchesSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_matches_settled_total",
			Help: "The total number of matches completed and settled.",
		}),
		MatchesDisputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_matches_disputed_total",
			Help: "The total number of matches parked for manual resolution.",
		}),
		SettlementDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtside_match_settlement_duration_seconds",
			Help:    "The duration of individual match settlements.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CheckIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_checkins_total",
			Help: "The total number of accepted venue check-ins.",
		}),
		CheckInsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_checkins_rejected_total",
			Help: "The total number of check-ins rejected for being too far from the venue.",
		}),
		StaleEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_stale_evictions_total",
			Help: "The total number of presence records removed by the stale sweep.",
		}),
		RankingQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_ranking_queries_total",
			Help: "The total number of leaderboard queries served.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtside_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesCreated,
		s.MatchesSettled,
		s.MatchesDisputed,
		s.SettlementDuration,
		s.CheckIns,
		s.CheckInsRejected,
		s.StaleEvictions,
		s.RankingQueries,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesCreated() {
	s.MatchesCreated.Inc()
}

func (s *Service) IncMatchesSettled() {
	s.MatchesSettled.Inc()
}

func (s *Service) IncMatchesDisputed() {
	s.MatchesDisputed.Inc()
}

func (s *Service) ObserveSettlementDuration(duration float64) {
	s.SettlementDuration.Observe(duration)
}

func (s *Service) IncCheckIns() {
	s.CheckIns.Inc()
}

func (s *Service) IncCheckInsRejected() {
	s.CheckInsRejected.Inc()
}

func (s *Service) AddStaleEvictions(count int) {
	s.StaleEvictions.Add(float64(count))
}

func (s *Service) IncRankingQueries() {
	s.RankingQueries.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
