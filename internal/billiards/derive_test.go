package billiards_test

import (
	"testing"

	"github.com/lhclub/recordkeeper/internal/billiards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		desc              string
		base, minus, plus float64
		want              float64
	}{
		{"basic", 100, 5, 0, 50.00},
		{"zero base", 0, 5, 5, 0},
		{"negative base", -10, 5, 5, 0},
		{"zero minus", 50, 0, 0, 0.00},
		{"bonus balls grow the denominator", 100, 5, 10, 25.00},
		{"negative bonus can zero the denominator", 100, 5, -10, 0},
		{"rounds to two decimals", 100, 1, 2, 8.33},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, billiards.Percentage(tc.base, tc.minus, tc.plus))
		})
	}
}

func TestRankStrictPositions(t *testing.T) {
	ranks := billiards.Rank([]float64{50.00, 75.00, 75.00, 20.00})
	assert.Equal(t, []int{3, 1, 2, 4}, ranks, "ties get distinct ranks in original order")
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, billiards.Rank(nil))
}

func TestRankRecords(t *testing.T) {
	records := []billiards.Record{
		{PlayerName: "Cho", Percentage: 50},
		{PlayerName: "Kim", Percentage: 75},
		{PlayerName: "Lee", Percentage: 75},
		{PlayerName: "Park", Percentage: 20},
	}

	ranked := billiards.RankRecords(records)
	require.Len(t, ranked, 4)
	assert.Equal(t, "Kim", ranked[0].PlayerName)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Lee", ranked[1].PlayerName, "tie keeps original order")
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "Cho", ranked[2].PlayerName)
	assert.Equal(t, "Park", ranked[3].PlayerName)
	assert.Equal(t, 4, ranked[3].Rank)

	assert.Equal(t, "Cho", records[0].PlayerName, "input order is untouched")
}
