package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commodity-profits/internal/model"
)

func TestSummarize(t *testing.T) {
	g := &model.Grid{}
	g.Set(0, 0, 0, 100)
	g.Set(0, 1, 0, -20)
	g.Set(0, 2, 0, -30)
	g.Set(6, 0, 0, 500)

	s, ok := Summarize(g, "Gold")
	require.True(t, ok)
	assert.Equal(t, "Gold", s.Commodity)
	assert.Equal(t, 550, s.Total)
	assert.Equal(t, -30, s.Min)
	assert.Equal(t, 500, s.Max)
	assert.InDelta(t, 550.0/336.0, s.Mean, 1e-9)
	assert.Equal(t, 2, s.GainDays)
	assert.Equal(t, 2, s.LossDays)
	assert.Equal(t, 332, s.FlatDays)
	assert.Equal(t, "July", s.BestMonth)
	assert.Equal(t, 2, s.LongestLossStreak)
	assert.Equal(t, 0.0, s.P05)
	assert.Equal(t, 0.0, s.P95)

	_, ok = Summarize(g, "Tin")
	assert.False(t, ok)
}

func TestPercentileSorted(t *testing.T) {
	vals := []float64{0, 10, 20, 30, 40}
	assert.Equal(t, 0.0, percentileSorted(vals, 0))
	assert.Equal(t, 40.0, percentileSorted(vals, 1))
	assert.Equal(t, 20.0, percentileSorted(vals, 0.5))
	assert.InDelta(t, 2.0, percentileSorted(vals, 0.05), 1e-9)
	assert.Equal(t, 0.0, percentileSorted(nil, 0.5))
}

func TestRankCommodities(t *testing.T) {
	g := &model.Grid{}
	g.Set(0, 0, 3, 50) // Wheat
	g.Set(0, 0, 1, 90) // Oil
	g.Set(0, 0, 4, -5) // Copper

	ranked := RankCommodities(g)
	require.Len(t, ranked, model.Commodities)

	names := make([]string, 0, len(ranked))
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
		names = append(names, r.Commodity)
	}
	assert.Equal(t, []string{"Oil", "Wheat", "Gold", "Silver", "Copper"}, names)
}
