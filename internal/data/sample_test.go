package data

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"commodity-profits/internal/model"
)

func TestSampleMonthIsDeterministic(t *testing.T) {
	a := SampleMonth(42, 3)
	b := SampleMonth(42, 3)
	assert.Equal(t, a, b)
	assert.Len(t, a, model.Days*model.Commodities)
	assert.NotEqual(t, a, SampleMonth(42, 4))
}

func TestWriteSampleDirLoadsCleanly(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteSampleDir(dir, "", 7)
	require.NoError(t, err)
	assert.Len(t, paths, model.Months)

	g, report, err := LoadGrid(context.Background(), NewDirSource(dir, ""), ParseStrict, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, report.MonthsLoaded, model.Months)
	assert.Empty(t, report.MissingMonths)
	assert.Zero(t, report.MalformedRows)
	assert.Equal(t, model.Months*model.Days*model.Commodities, report.RowsApplied)

	first := SampleMonth(7, 0)[0]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "Gold", first[1])
	assert.Equal(t, first[2], strconv.Itoa(g.At(0, 0, 0)))
}
