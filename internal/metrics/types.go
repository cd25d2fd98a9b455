package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	MatchesCreated     prometheus.Counter
	MatchesSettled     prometheus.Counter
	MatchesDisputed    prometheus.Counter
	SettlementDuration prometheus.Histogram
	CheckIns           prometheus.Counter
	CheckInsRejected   prometheus.Counter
	StaleEvictions     prometheus.Counter
	RankingQueries     prometheus.Counter
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
