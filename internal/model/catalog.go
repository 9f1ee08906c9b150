package model

// Grid dimensions. These are fixed for the dataset: one year of 28-day months
// across five commodities.
const (
	Months      = 12
	Days        = 28
	Commodities = 5
)

// MonthNames is the canonical month catalog, index-aligned with the first grid axis.
// Source files are named after these values.
var MonthNames = [Months]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CommodityNames is the canonical commodity catalog, index-aligned with the third grid axis.
var CommodityNames = [Commodities]string{"Gold", "Oil", "Silver", "Wheat", "Copper"}

// CommodityIndex resolves a commodity name against the catalog.
// Matching is case-sensitive and exact; "gold" and " Gold" are not found.
func CommodityIndex(name string) (int, bool) {
	for i, n := range CommodityNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// MonthIndex resolves a canonical month name to its 0-based index.
func MonthIndex(name string) (int, bool) {
	for i, n := range MonthNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// ValidMonth reports whether m is a 0-based month index.
func ValidMonth(m int) bool { return m >= 0 && m < Months }

// ValidDay reports whether d is a 1-based day of month.
func ValidDay(d int) bool { return d >= 1 && d <= Days }
