package main

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"commodity-profits/internal/model"
)

// parseMonth accepts a canonical month name or a 0-based index. Range checks
// are left to the queries so their sentinels stay the single source of truth.
func parseMonth(arg string) (int, error) {
	if m, ok := model.MonthIndex(arg); ok {
		return m, nil
	}
	m, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Newf("month %q is neither a month name nor an index", arg)
	}
	return m, nil
}

func parseInt(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Newf("%s %q is not an integer", name, arg)
	}
	return v, nil
}

func errInvalidMonth(arg string) error {
	return errors.Newf("invalid month %q (want 0..%d or a month name)", arg, model.Months-1)
}

func errInvalidCommodity(names ...string) error {
	return errors.Newf("invalid commodity in %q (known: %v)", names, model.CommodityNames)
}
