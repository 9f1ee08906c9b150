package report

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"commodity-profits/internal/analysis"
	"commodity-profits/internal/model"
)

// SummarySheet is the first sheet of an exported workbook.
const SummarySheet = "Summary"

var summaryHeader = []string{
	"Rank", "Commodity", "Total", "Min", "Max", "Mean", "P05", "P95",
	"Gain days", "Loss days", "Flat days", "Best month", "Longest loss streak",
}

// WriteWorkbook exports a Summary sheet with the commodity ranking followed by
// one sheet per month: days down, commodities across, plus a day total column.
func WriteWorkbook(path string, g *model.Grid) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return errors.Wrap(err, "rename summary sheet")
	}
	if err := writeSummarySheet(f, analysis.RankCommodities(g)); err != nil {
		return err
	}
	for m, month := range model.MonthNames {
		if _, err := f.NewSheet(month); err != nil {
			return errors.Wrapf(err, "add sheet %s", month)
		}
		if err := writeMonthSheet(f, g, m); err != nil {
			return errors.Wrapf(err, "fill sheet %s", month)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "save workbook")
	}
	return nil
}

func writeSummarySheet(f *excelize.File, ranked []analysis.RankedCommodity) error {
	if err := setRow(f, SummarySheet, 1, toCells(summaryHeader)); err != nil {
		return err
	}
	for i, r := range ranked {
		row := []interface{}{
			r.Rank, r.Commodity, r.Total, r.Min, r.Max, r.Mean, r.P05, r.P95,
			r.GainDays, r.LossDays, r.FlatDays, r.BestMonth, r.LongestLossStreak,
		}
		if err := setRow(f, SummarySheet, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "M", 14)
}

func writeMonthSheet(f *excelize.File, g *model.Grid, m int) error {
	sheet := model.MonthNames[m]
	header := []interface{}{"Day"}
	for _, c := range model.CommodityNames {
		header = append(header, c)
	}
	header = append(header, "Total")
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for d := 0; d < model.Days; d++ {
		row := []interface{}{d + 1}
		for c := 0; c < model.Commodities; c++ {
			row = append(row, g.At(m, d, c))
		}
		row = append(row, g.DayTotal(m, d))
		if err := setRow(f, sheet, d+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
