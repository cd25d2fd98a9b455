// Package sweeper runs the periodic eviction of stale venue presences.
package sweeper

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtsidehq/courtside/internal/metrics"
	"github.com/courtsidehq/courtside/internal/presence"
	"github.com/courtsidehq/courtside/internal/pubsub"
	"github.com/go-co-op/gocron/v2"
)

// Sweeper owns the background job that checks out players whose last
// heartbeat is older than the staleness threshold.
type Sweeper struct {
	tracker   presence.Tracker
	metrics   metrics.Metrics
	pubsub    pubsub.PubSubClient
	interval  time.Duration
	threshold time.Duration
	sched     gocron.Scheduler
}

// New creates a Sweeper. The pubsub client may be nil, in which case
// eviction events are only logged.
func New(tracker presence.Tracker, metrics metrics.Metrics, ps pubsub.PubSubClient, interval, threshold time.Duration) *Sweeper {
	return &Sweeper{
		tracker:   tracker,
		metrics:   metrics,
		pubsub:    ps,
		interval:  interval,
		threshold: threshold,
	}
}

// Start schedules the sweep and begins running it. It returns once the
// scheduler is running; the sweep itself runs in the background.
func (s *Sweeper) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = sched

	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.sweep),
	)
	if err != nil {
		return err
	}

	sched.Start()
	log.Info("Presence sweeper started", "interval", s.interval, "threshold", s.threshold)
	return nil
}

// Stop shuts the scheduler down, waiting for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.sched != nil {
		if err := s.sched.Shutdown(); err != nil {
			log.Error("Failed to shut down presence sweeper", "error", err)
		}
	}
}

func (s *Sweeper) sweep() (int, error) {
	evicted, err := s.tracker.CleanupStale(s.threshold)
	if err != nil {
		log.Error("Presence sweep failed", "error", err)
		return 0, err
	}
	if evicted == 0 {
		return 0, nil
	}

	s.metrics.AddStaleEvictions(evicted)
	log.Info("Evicted stale presences", "count", evicted, "threshold", s.threshold)

	if s.pubsub != nil {
		event := pubsub.PresenceEvictedEvent{
			Count:     evicted,
			Threshold: s.threshold.String(),
			EvictedAt: time.Now().UTC(),
		}
		if err := s.pubsub.SendMessage(pubsub.EventPresenceEvicted, event); err != nil {
			log.Error("Failed to publish presence eviction event", "error", err)
		}
	}
	return evicted, nil
}
