// Package analysis answers read-only queries over a loaded grid.
//
// Invalid input is reported through sentinel return values rather than errors:
// an out-of-range month or day, an unknown commodity name, or an empty day
// range. Callers compare against the sentinels below.
package analysis

import (
	"fmt"

	"commodity-profits/internal/model"
)

// Sentinels returned for invalid query input.
const (
	// InvalidSum is returned by queries whose result is a profit total.
	InvalidSum = -99999
	// InvalidCount is returned by queries whose result is a day, count or swing,
	// all of which are otherwise non-negative.
	InvalidCount = -1
	// InvalidMonth is returned by name-valued queries taking a month.
	InvalidMonth = "INVALID_MONTH"
	// InvalidCommodity is returned by name-valued queries taking a commodity.
	InvalidCommodity = "INVALID_COMMODITY"
)

// Equal is CompareTwoCommodities' answer when both annual totals match.
const Equal = "Equal"

// MostProfitableCommodityInMonth returns the commodity with the largest 28-day
// total in month, and that total. Ties keep the lowest catalog index.
func MostProfitableCommodityInMonth(g *model.Grid, month int) (string, int) {
	if !model.ValidMonth(month) {
		return InvalidMonth, InvalidSum
	}
	best := 0
	bestTotal := g.MonthTotal(month, 0)
	for c := 1; c < model.Commodities; c++ {
		if total := g.MonthTotal(month, c); total > bestTotal {
			best, bestTotal = c, total
		}
	}
	return model.CommodityNames[best], bestTotal
}

// TotalProfitOnDay sums all commodities on a 1-based day of month.
func TotalProfitOnDay(g *model.Grid, month, day int) int {
	if !model.ValidMonth(month) || !model.ValidDay(day) {
		return InvalidSum
	}
	return g.DayTotal(month, day-1)
}

// CommodityProfitInRange sums commodity over days fromDay..toDay (inclusive,
// 1-based) in every month of the year.
func CommodityProfitInRange(g *model.Grid, commodity string, fromDay, toDay int) int {
	c, ok := model.CommodityIndex(commodity)
	if !ok || !model.ValidDay(fromDay) || !model.ValidDay(toDay) || fromDay > toDay {
		return InvalidSum
	}
	total := 0
	for m := 0; m < model.Months; m++ {
		for d := fromDay - 1; d < toDay; d++ {
			total += g.At(m, d, c)
		}
	}
	return total
}

// BestDayOfMonth returns the 1-based day with the highest total across all
// commodities. Ties keep the earliest day, so an all-zero month answers 1.
func BestDayOfMonth(g *model.Grid, month int) int {
	if !model.ValidMonth(month) {
		return InvalidCount
	}
	best := 0
	bestTotal := g.DayTotal(month, 0)
	for d := 1; d < model.Days; d++ {
		if total := g.DayTotal(month, d); total > bestTotal {
			best, bestTotal = d, total
		}
	}
	return best + 1
}

// BestMonthForCommodity returns the name of the month where commodity earned
// the most. Ties keep the earliest month.
func BestMonthForCommodity(g *model.Grid, commodity string) string {
	c, ok := model.CommodityIndex(commodity)
	if !ok {
		return InvalidCommodity
	}
	return model.MonthNames[bestMonthIndex(g, c)]
}

func bestMonthIndex(g *model.Grid, c int) int {
	best := 0
	bestTotal := g.MonthTotal(0, c)
	for m := 1; m < model.Months; m++ {
		if total := g.MonthTotal(m, c); total > bestTotal {
			best, bestTotal = m, total
		}
	}
	return best
}

// ConsecutiveLossDays returns the longest run of strictly negative days for
// commodity, walking the year in calendar order. Runs carry across month
// boundaries; a zero day ends a run.
func ConsecutiveLossDays(g *model.Grid, commodity string) int {
	c, ok := model.CommodityIndex(commodity)
	if !ok {
		return InvalidCount
	}
	return longestLossStreak(g, c)
}

func longestLossStreak(g *model.Grid, c int) int {
	longest, run := 0, 0
	for m := 0; m < model.Months; m++ {
		for d := 0; d < model.Days; d++ {
			if g.At(m, d, c) < 0 {
				run++
				if run > longest {
					longest = run
				}
				continue
			}
			run = 0
		}
	}
	return longest
}

// DaysAboveThreshold counts days in the year where commodity earned strictly
// more than threshold.
func DaysAboveThreshold(g *model.Grid, commodity string, threshold int) int {
	c, ok := model.CommodityIndex(commodity)
	if !ok {
		return InvalidCount
	}
	n := 0
	for m := 0; m < model.Months; m++ {
		for d := 0; d < model.Days; d++ {
			if g.At(m, d, c) > threshold {
				n++
			}
		}
	}
	return n
}

// BiggestDailySwing returns the largest absolute change in total profit
// between two consecutive days of month.
func BiggestDailySwing(g *model.Grid, month int) int {
	if !model.ValidMonth(month) {
		return InvalidCount
	}
	swing := 0
	prev := g.DayTotal(month, 0)
	for d := 1; d < model.Days; d++ {
		cur := g.DayTotal(month, d)
		if diff := abs(cur - prev); diff > swing {
			swing = diff
		}
		prev = cur
	}
	return swing
}

// CompareTwoCommodities compares annual totals and answers
// "<winner> is better by <difference>", or Equal.
func CompareTwoCommodities(g *model.Grid, c1, c2 string) string {
	i1, ok1 := model.CommodityIndex(c1)
	i2, ok2 := model.CommodityIndex(c2)
	if !ok1 || !ok2 {
		return InvalidCommodity
	}
	t1, t2 := g.YearTotal(i1), g.YearTotal(i2)
	switch {
	case t1 > t2:
		return fmt.Sprintf("%s is better by %d", c1, t1-t2)
	case t2 > t1:
		return fmt.Sprintf("%s is better by %d", c2, t2-t1)
	default:
		return Equal
	}
}

// DaysPerWeek splits a 28-day month into four fixed weeks.
const DaysPerWeek = 7

// BestWeekOfMonth answers "Week N" for the fixed week (days 1-7, 8-14, 15-21,
// 22-28) with the highest total across all commodities. Ties keep the earliest.
func BestWeekOfMonth(g *model.Grid, month int) string {
	if !model.ValidMonth(month) {
		return InvalidMonth
	}
	best, bestTotal := 0, 0
	for w := 0; w < model.Days/DaysPerWeek; w++ {
		total := 0
		for d := w * DaysPerWeek; d < (w+1)*DaysPerWeek; d++ {
			total += g.DayTotal(month, d)
		}
		if w == 0 || total > bestTotal {
			best, bestTotal = w, total
		}
	}
	return fmt.Sprintf("Week %d", best+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
