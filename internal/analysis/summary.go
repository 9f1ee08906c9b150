package analysis

import (
	"math"
	"sort"

	"commodity-profits/internal/model"
)

// CommoditySummary is a year-level view of one commodity, used for ranking and
// report export.
type CommoditySummary struct {
	Commodity string `json:"commodity"`

	Total int     `json:"total"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Mean  float64 `json:"mean"`
	P05   float64 `json:"p05"`
	P95   float64 `json:"p95"`

	GainDays int `json:"gain_days"`
	FlatDays int `json:"flat_days"`
	LossDays int `json:"loss_days"`

	BestMonth         string `json:"best_month"`
	LongestLossStreak int    `json:"longest_loss_streak"`
}

// Summarize computes a CommoditySummary. ok is false for unknown commodities.
func Summarize(g *model.Grid, commodity string) (CommoditySummary, bool) {
	c, ok := model.CommodityIndex(commodity)
	if !ok {
		return CommoditySummary{}, false
	}
	return summarizeIndex(g, c), true
}

func summarizeIndex(g *model.Grid, c int) CommoditySummary {
	s := CommoditySummary{
		Commodity: model.CommodityNames[c],
		Min:       math.MaxInt,
		Max:       math.MinInt,
	}
	vals := make([]float64, 0, model.Months*model.Days)
	for m := 0; m < model.Months; m++ {
		for d := 0; d < model.Days; d++ {
			v := g.At(m, d, c)
			vals = append(vals, float64(v))
			s.Total += v
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
			switch model.OutcomeFromProfit(v) {
			case model.OutcomeGain:
				s.GainDays++
			case model.OutcomeLoss:
				s.LossDays++
			default:
				s.FlatDays++
			}
		}
	}
	sort.Float64s(vals)
	s.Mean = float64(s.Total) / float64(len(vals))
	s.P05 = percentileSorted(vals, 0.05)
	s.P95 = percentileSorted(vals, 0.95)
	s.BestMonth = model.MonthNames[bestMonthIndex(g, c)]
	s.LongestLossStreak = longestLossStreak(g, c)
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
