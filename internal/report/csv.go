package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create ledger csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"day",
		"commodity",
		"profit",
		"outcome",
		"cum_profit",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			r.Month,
			strconv.Itoa(r.Day),
			r.Commodity,
			strconv.Itoa(r.Profit),
			string(r.Outcome),
			strconv.Itoa(r.CumProfit),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
