package data

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"commodity-profits/internal/model"
)

// Snapshot is the JSON shape of an exported grid.
// Values is indexed exactly like model.Grid: [month][day-1][commodity].
type Snapshot struct {
	Months      []string                                         `json:"months"`
	Commodities []string                                         `json:"commodities"`
	Values      [model.Months][model.Days][model.Commodities]int `json:"values"`
	Report      *LoadReport                                      `json:"load_report,omitempty"`
}

func NewSnapshot(g *model.Grid, report *LoadReport) Snapshot {
	return Snapshot{
		Months:      model.MonthNames[:],
		Commodities: model.CommodityNames[:],
		Values:      *g,
		Report:      report,
	}
}

// WriteSnapshotJSON writes the grid as indented JSON. Snapshots are an export
// artifact; nothing in this module reads them back.
func WriteSnapshotJSON(path string, g *model.Grid, report *LoadReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create snapshot directory")
	}
	raw, err := json.MarshalIndent(NewSnapshot(g, report), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	return nil
}
