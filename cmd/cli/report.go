package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"commodity-profits/internal/analysis"
	"commodity-profits/internal/data"
	"commodity-profits/internal/report"
)

func newRankCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "Rank commodities by annual total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			table := pterm.TableData{{"rank", "commodity", "total", "min/max", "mean", "loss days", "best month", "streak"}}
			for _, r := range analysis.RankCommodities(ds.grid) {
				table = append(table, []string{
					strconv.Itoa(r.Rank),
					r.Commodity,
					strconv.Itoa(r.Total),
					fmt.Sprintf("%d/%d", r.Min, r.Max),
					fmt.Sprintf("%.2f", r.Mean),
					strconv.Itoa(r.LossDays),
					r.BestMonth,
					strconv.Itoa(r.LongestLossStreak),
				})
			}
			rendered, err := pterm.DefaultTable.WithHasHeader().WithData(table).Srender()
			if err != nil {
				return errors.Wrap(err, "render table")
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func newExportCmd(load loadFunc) *cobra.Command {
	var csvPath, xlsxPath, jsonPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded grid as a CSV ledger, an XLSX workbook and/or a JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" && xlsxPath == "" && jsonPath == "" {
				return errors.New("nothing to export: pass at least one of --csv, --xlsx, --json")
			}
			ds, err := load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if csvPath != "" {
				ledger := report.BuildLedger(ds.grid)
				if err := report.WriteLedgerCSV(csvPath, ledger); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d rows to %s\n", len(ledger), csvPath)
			}
			if xlsxPath != "" {
				if err := report.WriteWorkbook(xlsxPath, ds.grid); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote workbook %s\n", xlsxPath)
			}
			if jsonPath != "" {
				if err := data.WriteSnapshotJSON(jsonPath, ds.grid, ds.report); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote snapshot %s\n", jsonPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "Ledger CSV output path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Workbook output path")
	cmd.Flags().StringVar(&jsonPath, "json", "", "JSON snapshot output path")
	return cmd
}
