package billiards

import (
	"math"
	"sort"
)

// Percentage computes the handicap percentage from the starting ball count
// (base), balls subtracted (minus) and bonus balls (plus). The denominator
// is base/10 + plus; a non-positive base or denominator yields 0. The result
// is rounded to two decimals.
func Percentage(base, minus, plus float64) float64 {
	if base <= 0 {
		return 0
	}
	denominator := base/10 + plus
	if denominator <= 0 {
		return 0
	}
	return math.Round(minus/denominator*100*100) / 100
}

// Rank assigns strict 1..N positions by descending percentage. Ties keep
// their original relative order and still receive distinct ranks. The result
// is aligned with the input: ranks[i] is the rank of percentages[i].
func Rank(percentages []float64) []int {
	order := make([]int, len(percentages))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return percentages[order[a]] > percentages[order[b]]
	})

	ranks := make([]int, len(percentages))
	for position, index := range order {
		ranks[index] = position + 1
	}
	return ranks
}

// RankRecords sorts records by descending percentage and attaches strict
// sequential ranks. The input slice is not modified.
func RankRecords(records []Record) []RankedRecord {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage > sorted[j].Percentage
	})

	ranked := make([]RankedRecord, len(sorted))
	for i, record := range sorted {
		ranked[i] = RankedRecord{Record: record, Rank: i + 1}
	}
	return ranked
}
