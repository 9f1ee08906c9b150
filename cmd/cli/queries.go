package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"commodity-profits/internal/analysis"
	"commodity-profits/internal/model"
)

func newCheckCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load every month and print the January 1 Gold self-check value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Data Loading Test - Result: %d\n", ds.grid.At(0, 0, 0))
			fmt.Fprintf(out, "months loaded=%d missing=%v rows=%d unknown_commodity=%d malformed=%d\n",
				len(ds.report.MonthsLoaded), ds.report.MissingMonths, ds.report.RowsApplied,
				ds.report.UnknownCommodityRows, ds.report.MalformedRows)
			return nil
		},
	}
}

func newLeaderCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "leader <month>",
		Short: "Most profitable commodity in a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			name, total := analysis.MostProfitableCommodityInMonth(ds.grid, m)
			if name == analysis.InvalidMonth {
				return errInvalidMonth(args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", name, total)
			return nil
		},
	}
}

func newDayTotalCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "day-total <month> <day>",
		Short: "Total profit of all commodities on one day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			day, err := parseInt("day", args[1])
			if err != nil {
				return err
			}
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			total := analysis.TotalProfitOnDay(ds.grid, m, day)
			if total == analysis.InvalidSum {
				return errors.Newf("invalid month %q or day %d (days are 1..%d)", args[0], day, model.Days)
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}

func newRangeCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "range <commodity> <from-day> <to-day>",
		Short: "Commodity profit over a day range, summed across all months",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseInt("from-day", args[1])
			if err != nil {
				return err
			}
			to, err := parseInt("to-day", args[2])
			if err != nil {
				return err
			}
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			total := analysis.CommodityProfitInRange(ds.grid, args[0], from, to)
			if total == analysis.InvalidSum {
				return errors.Newf("invalid commodity %q or day range %d..%d", args[0], from, to)
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}

func newBestDayCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "best-day <month>",
		Short: "Day of the month with the highest total profit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			day := analysis.BestDayOfMonth(ds.grid, m)
			if day == analysis.InvalidCount {
				return errInvalidMonth(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), day)
			return nil
		},
	}
}

func newBestMonthCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "best-month <commodity>",
		Short: "Month in which a commodity earned the most",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			month := analysis.BestMonthForCommodity(ds.grid, args[0])
			if month == analysis.InvalidCommodity {
				return errInvalidCommodity(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), month)
			return nil
		},
	}
}

func newLossStreakCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "loss-streak <commodity>",
		Short: "Longest run of consecutive losing days for a commodity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			n := analysis.ConsecutiveLossDays(ds.grid, args[0])
			if n == analysis.InvalidCount {
				return errInvalidCommodity(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newAboveCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "above <commodity> <threshold>",
		Short: "Number of days a commodity earned strictly more than a threshold",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := parseInt("threshold", args[1])
			if err != nil {
				return err
			}
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			n := analysis.DaysAboveThreshold(ds.grid, args[0], threshold)
			if n == analysis.InvalidCount {
				return errInvalidCommodity(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newSwingCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "swing <month>",
		Short: "Biggest change in total profit between consecutive days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			swing := analysis.BiggestDailySwing(ds.grid, m)
			if swing == analysis.InvalidCount {
				return errInvalidMonth(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), swing)
			return nil
		},
	}
}

func newCompareCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <commodity> <commodity>",
		Short: "Compare two commodities by annual total",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			res := analysis.CompareTwoCommodities(ds.grid, args[0], args[1])
			if res == analysis.InvalidCommodity {
				return errInvalidCommodity(args...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newBestWeekCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "best-week <month>",
		Short: "Best fixed 7-day week of a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			week := analysis.BestWeekOfMonth(ds.grid, m)
			if week == analysis.InvalidMonth {
				return errInvalidMonth(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), week)
			return nil
		},
	}
}
