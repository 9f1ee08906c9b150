package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"commodity-profits/internal/config"
	"commodity-profits/internal/data"
	"commodity-profits/internal/logging"
	"commodity-profits/internal/model"
)

type rootOptions struct {
	configPath string
	dataDir    string
	lenient    bool
	logLevel   string
}

// dataset is what every query subcommand works on.
type dataset struct {
	grid   *model.Grid
	report *data.LoadReport
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "profits",
		Short: "Query a year of daily commodity profits",
		Long: `Load twelve month files (<Month>.txt, header + "day,commodity,profit" rows)
into a 12x28x5 grid and answer questions about it.

Months are 0-based indexes (0 = January) or canonical names.
Days are 1-based (1..28). Commodity names are case-sensitive:
Gold, Oil, Silver, Wheat, Copper.

Examples:
  profits check
  profits leader 0
  profits day-total March 14
  profits range Gold 1 7
  profits compare Gold Oil
  profits export --csv out/ledger.csv --xlsx out/profits.xlsx`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to YAML config (optional)")
	root.PersistentFlags().StringVarP(&opts.dataDir, "data-dir", "d", "", "Directory holding the month files (overrides config)")
	root.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "Skip malformed rows instead of failing the load")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (overrides config)")

	load := func(cmd *cobra.Command) (*dataset, error) {
		return loadDataset(cmd, opts)
	}

	root.AddCommand(
		newCheckCmd(load),
		newLeaderCmd(load),
		newDayTotalCmd(load),
		newRangeCmd(load),
		newBestDayCmd(load),
		newBestMonthCmd(load),
		newLossStreakCmd(load),
		newAboveCmd(load),
		newSwingCmd(load),
		newCompareCmd(load),
		newBestWeekCmd(load),
		newRankCmd(load),
		newExportCmd(load),
	)
	return root
}

type loadFunc func(cmd *cobra.Command) (*dataset, error)

func loadDataset(cmd *cobra.Command, opts *rootOptions) (*dataset, error) {
	cfg, err := config.LoadUnchecked(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.dataDir != "" {
		cfg.Data.Dir = opts.dataDir
	}
	if opts.lenient {
		cfg.Data.ParseMode = string(data.ParseLenient)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return nil, err
	}

	grid, report, err := data.LoadGrid(cmd.Context(), cfg.Source(), cfg.Mode(), logger)
	if err != nil {
		return nil, errors.WithHint(err, "use --lenient to skip malformed rows")
	}
	return &dataset{grid: grid, report: report, cfg: cfg, logger: logger}, nil
}
