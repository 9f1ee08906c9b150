package report

import (
	"commodity-profits/internal/model"
)

// LedgerRow is one (month, day, commodity) cell in chronological order.
type LedgerRow struct {
	Month     string
	Day       int // 1-based
	Commodity string

	Profit  int
	Outcome model.Outcome

	// CumProfit is the commodity's running total since January 1.
	CumProfit int
}

// BuildLedger flattens the grid month-major, then by day, then in catalog
// order, keeping a running total per commodity.
func BuildLedger(g *model.Grid) []LedgerRow {
	ledger := make([]LedgerRow, 0, model.Months*model.Days*model.Commodities)
	var cum [model.Commodities]int

	for m := 0; m < model.Months; m++ {
		for d := 0; d < model.Days; d++ {
			for c := 0; c < model.Commodities; c++ {
				v := g.At(m, d, c)
				cum[c] += v
				ledger = append(ledger, LedgerRow{
					Month:     model.MonthNames[m],
					Day:       d + 1,
					Commodity: model.CommodityNames[c],
					Profit:    v,
					Outcome:   model.OutcomeFromProfit(v),
					CumProfit: cum[c],
				})
			}
		}
	}
	return ledger
}
