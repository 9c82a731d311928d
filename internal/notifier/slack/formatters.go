package slack

import (
	"fmt"
	"strings"

	"github.com/lhclub/recordkeeper/internal/billiards"
	"github.com/lhclub/recordkeeper/internal/tennis"
	"github.com/slack-go/slack"
)

// formatTennisResult creates the Slack message for a saved doubles result using Block Kit.
func (s *Notifier) formatTennisResult(record tennis.Record) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "🎾 Match result saved! 🎾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s / %s  %d : %d  %s / %s",
		record.Player1, record.Player2, record.ScoreLeft, record.ScoreRight,
		record.Player3, record.Player4)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject("plain_text", record.CreatedAt.Format("Monday 02 Jan"), true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatBilliardsStandings creates a Slack message listing a day's standings.
func (s *Notifier) formatBilliardsStandings(date string, ranked []billiards.RankedRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎱 Daily standings 🎱", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", date, true, false), nil, nil))

	if len(ranked) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", "No sessions recorded.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for _, entry := range ranked {
		lines = append(lines, fmt.Sprintf("%d. %s  %.2f%%", entry.Rank, entry.PlayerName, entry.Percentage))
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
