package slack

import (
	"fmt"
	"strings"

	"github.com/courtsidehq/courtside/internal/match"
	"github.com/courtsidehq/courtside/internal/ranking"
	"github.com/slack-go/slack"
)

// formatMatchResult creates the Slack message for a settled match using Block Kit.
func (s *Notifier) formatMatchResult(m *match.Match, player1Name, player2Name string) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Match settled! 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var score1, score2 int
	if m.Player1Score != nil {
		score1 = *m.Player1Score
	}
	if m.Player2Score != nil {
		score2 = *m.Player2Score
	}

	var resultText string
	switch {
	case m.WinnerID == nil:
		resultText = fmt.Sprintf("%s vs %s\nDraw: %d - %d", player1Name, player2Name, score1, score2)
	case *m.WinnerID == m.Player1ID:
		resultText = fmt.Sprintf("%s beat %s\nScore: %d - %d", player1Name, player2Name, score1, score2)
	default:
		resultText = fmt.Sprintf("%s beat %s\nScore: %d - %d", player2Name, player1Name, score2, score1)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultText, true, false), nil, nil))

	if m.WinnerID != nil {
		contextText := fmt.Sprintf("Winner earned %d XP and %d RP", m.WinnerXP, m.WinnerRP)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatDisputeAlert creates the Slack message for a disputed match.
func (s *Notifier) formatDisputeAlert(m *match.Match, disputedByName string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚠️ Match disputed ⚠️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Match %s was disputed by %s and needs a manual review.", m.ID, disputedByName)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates the Slack message for a leaderboard snapshot.
func (s *Notifier) formatLeaderboard(lb *ranking.Leaderboard) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏅 %s leaderboard 🏅", lb.Location), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for _, entry := range lb.Rankings {
		line := fmt.Sprintf("%d. %s - %d XP", entry.Rank, entry.PlayerName, entry.XP)
		if entry.IsKing {
			line += " 👑"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, "No ranked players yet.")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	contextText := fmt.Sprintf("%d ranked players", lb.TotalPlayers)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}
