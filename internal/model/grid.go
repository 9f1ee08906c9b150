package model

// Grid holds one year of daily profits indexed by [month][day-1][commodity].
// Values may be negative (a loss). The zero value is an all-zero grid, which is
// also what any month without a source looks like after loading.
//
// A Grid has a single writer (the loader). Once loading returns, callers treat it
// as read-only and may share a pointer across goroutines.
type Grid [Months][Days][Commodities]int

// At returns the profit for month m, 0-based day index d and commodity c.
func (g *Grid) At(m, d, c int) int {
	return g[m][d][c]
}

// Set overwrites a single cell. Only the loader should call this.
func (g *Grid) Set(m, d, c, profit int) {
	g[m][d][c] = profit
}

// DayTotal sums all commodities for month m, 0-based day index d.
func (g *Grid) DayTotal(m, d int) int {
	total := 0
	for c := 0; c < Commodities; c++ {
		total += g[m][d][c]
	}
	return total
}

// MonthTotal sums commodity c across every day of month m.
func (g *Grid) MonthTotal(m, c int) int {
	total := 0
	for d := 0; d < Days; d++ {
		total += g[m][d][c]
	}
	return total
}

// YearTotal sums commodity c across the whole grid.
func (g *Grid) YearTotal(c int) int {
	total := 0
	for m := 0; m < Months; m++ {
		total += g.MonthTotal(m, c)
	}
	return total
}
