package data

import (
	"encoding/csv"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"

	"commodity-profits/internal/model"
)

// SampleHeader is the first line of every generated month file.
var SampleHeader = []string{"Day", "Commodity", "Profit"}

// sampleBias shifts each commodity's daily profit so rankings are not a coin toss.
var sampleBias = [model.Commodities]int{400, 250, 150, -50, 100}

// SampleMonth returns one row per (day, commodity) for month m, in day order.
// The same seed always yields the same rows.
func SampleMonth(seed uint64, m int) [][]string {
	r := rand.New(rand.NewPCG(seed, uint64(m)))
	rows := make([][]string, 0, model.Days*model.Commodities)
	for d := 1; d <= model.Days; d++ {
		for c, name := range model.CommodityNames {
			profit := sampleBias[c] + r.IntN(2001) - 1000
			rows = append(rows, []string{strconv.Itoa(d), name, strconv.Itoa(profit)})
		}
	}
	return rows
}

// WriteSampleDir writes twelve month files "<Month><ext>" into dir and returns
// their paths.
func WriteSampleDir(dir, ext string, seed uint64) ([]string, error) {
	if ext == "" {
		ext = DefaultExt
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}
	paths := make([]string, 0, model.Months)
	for m, month := range model.MonthNames {
		path := filepath.Join(dir, month+ext)
		if err := writeSampleFile(path, seed, m); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSampleFile(path string, seed uint64, m int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(SampleHeader); err != nil {
		return errors.Wrapf(err, "write header %s", path)
	}
	if err := w.WriteAll(SampleMonth(seed, m)); err != nil {
		return errors.Wrapf(err, "write rows %s", path)
	}
	return f.Close()
}
