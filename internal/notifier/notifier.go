package notifier

import (
	"github.com/courtsidehq/courtside/internal/match"
	"github.com/courtsidehq/courtside/internal/ranking"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendMatchResult announces a settled match.
	SendMatchResult(m *match.Match, player1Name, player2Name string) error
	// SendDisputeAlert flags a disputed match for manual resolution.
	SendDisputeAlert(m *match.Match, disputedByName string) error
	// SendLeaderboard posts a leaderboard snapshot.
	SendLeaderboard(lb *ranking.Leaderboard) error
}
