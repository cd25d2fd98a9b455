package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchSettled    EventType = "match-settled"
	EventMatchDisputed   EventType = "match-disputed"
	EventPresenceEvicted EventType = "presence-evicted"
)

// MatchSettledEvent is published once per settled match, by the caller that
// won the settlement race.
type MatchSettledEvent struct {
	MatchID  string  `msgpack:"match_id"`
	SportID  string  `msgpack:"sport_id"`
	VenueID  string  `msgpack:"venue_id"`
	WinnerID *string `msgpack:"winner_id"`
}

// MatchDisputedEvent flags a match for manual resolution.
type MatchDisputedEvent struct {
	MatchID    string `msgpack:"match_id"`
	DisputedBy string `msgpack:"disputed_by"`
}

// PresenceEvictedEvent reports one stale-sweep run that removed records.
type PresenceEvictedEvent struct {
	Count     int       `msgpack:"count"`
	Threshold string    `msgpack:"threshold"`
	EvictedAt time.Time `msgpack:"evicted_at"`
}
