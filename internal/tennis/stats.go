package tennis

import "math"

// Summarize derives win/loss totals over filtered records. Each record is
// orientation-corrected first, so a win means the filter's left team scored
// higher. The win rate is a percentage rounded to one decimal, 0 when the
// sequence is empty.
func Summarize(records []FilteredRecord) Summary {
	summary := Summary{Total: len(records)}
	for _, record := range records {
		oriented := record.Oriented()
		if oriented.ScoreLeft > oriented.ScoreRight {
			summary.Wins++
		} else {
			summary.Losses++
		}
	}
	if summary.Total > 0 {
		rate := float64(summary.Wins) / float64(summary.Total) * 100
		summary.WinRate = math.Round(rate*10) / 10
	}
	return summary
}
