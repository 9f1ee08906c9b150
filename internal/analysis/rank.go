package analysis

import (
	"sort"

	"commodity-profits/internal/model"
)

type RankedCommodity struct {
	Rank int `json:"rank"`
	CommoditySummary
}

// RankCommodities summarizes every commodity and sorts descending by annual
// total. Equal totals keep catalog order.
func RankCommodities(g *model.Grid) []RankedCommodity {
	out := make([]RankedCommodity, 0, model.Commodities)
	for c := 0; c < model.Commodities; c++ {
		out = append(out, RankedCommodity{CommoditySummary: summarizeIndex(g, c)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
