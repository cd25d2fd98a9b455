package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesCreated()
	IncMatchesSettled()
	IncMatchesDisputed()
	ObserveSettlementDuration(duration float64)
	IncCheckIns()
	IncCheckInsRejected()
	AddStaleEvictions(count int)
	IncRankingQueries()
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}
