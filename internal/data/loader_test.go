package data

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	crdb "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"commodity-profits/internal/model"
)

func mapSource(files map[string]string) FSSource {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return FSSource{FS: fsys, Ext: ".txt"}
}

func TestLoadSingleMonth(t *testing.T) {
	src := mapSource(map[string]string{
		"January.txt": "Day,Commodity,Profit\n1, Gold, 2312\n2,Gold,-50\n1,Oil,10\n",
	})

	g, report, err := LoadGrid(context.Background(), src, ParseStrict, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 2312, g.At(0, 0, 0))
	assert.Equal(t, -50, g.At(0, 1, 0))
	assert.Equal(t, 10, g.At(0, 0, 1))
	assert.Equal(t, []string{"January"}, report.MonthsLoaded)
	assert.Len(t, report.MissingMonths, 11)
	assert.Equal(t, 3, report.RowsApplied)
}

func TestLoadMissingSourcesLeaveZeros(t *testing.T) {
	g, report, err := LoadGrid(context.Background(), mapSource(nil), ParseStrict, nil)
	require.NoError(t, err)
	assert.Equal(t, model.Grid{}, *g)
	assert.Empty(t, report.MonthsLoaded)
	assert.Equal(t, model.MonthNames[:], report.MissingMonths)
}

func TestLoadHeaderHandling(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"header only", "Day,Commodity,Profit\n", 0},
		{"empty file", "", 0},
		{"header without newline", "Day,Commodity,Profit", 0},
		{"blank header line is still the header", "\n1,Gold,5\n", 5},
		{"first data-looking line is dropped", "1,Gold,99\n1,Gold,5\n", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := mapSource(map[string]string{"March.txt": tt.body})
			g, report, err := LoadGrid(context.Background(), src, ParseStrict, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.At(2, 0, 0))
			assert.Equal(t, []string{"March"}, report.MonthsLoaded)
		})
	}
}

func TestLoadSkipsBlankLinesAndUnknownCommodities(t *testing.T) {
	src := mapSource(map[string]string{
		"May.txt": "Day,Commodity,Profit\n\n   \n3,gold,100\n3,Platinum,7\n3,Silver,8\n",
	})
	g, report, err := LoadGrid(context.Background(), src, ParseStrict, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, g.At(4, 2, 0), "lowercase commodity must not match")
	assert.Equal(t, 8, g.At(4, 2, 2))
	assert.Equal(t, 2, report.UnknownCommodityRows)
	assert.Equal(t, 1, report.RowsApplied)
}

func TestLoadLastWriteWins(t *testing.T) {
	src := mapSource(map[string]string{
		"April.txt": "h\n4,Wheat,1\n4,Wheat,2\n4,Wheat,3\n",
	})
	g, _, err := LoadGrid(context.Background(), src, ParseStrict, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, g.At(3, 3, 3))
}

func TestLoadTwiceIsIdempotent(t *testing.T) {
	src := mapSource(map[string]string{
		"January.txt": "h\n1,Gold,2312\n1,Gold,10\n2,Oil,-5\n",
		"June.txt":    "h\n28,Copper,42\n",
	})
	once, _, err := LoadGrid(context.Background(), src, ParseStrict, nil)
	require.NoError(t, err)

	twice := &model.Grid{}
	loader := NewLoader(src, ParseStrict, nil)
	_, err = loader.Load(context.Background(), twice)
	require.NoError(t, err)
	_, err = loader.Load(context.Background(), twice)
	require.NoError(t, err)

	assert.Equal(t, *once, *twice)
}

func TestLoadMalformedRows(t *testing.T) {
	bad := map[string]string{
		"non-integer day":    "h\nx,Gold,1\n",
		"non-integer profit": "h\n1,Gold,1.5\n",
		"too few fields":     "h\n1,Gold\n",
		"too many fields":    "h\n1,Gold,1,2\n",
		"day zero":           "h\n0,Gold,1\n",
		"day 29":             "h\n29,Gold,1\n",
		"only commas":        "h\n,,,\n",
	}
	for name, body := range bad {
		t.Run(name+"/strict", func(t *testing.T) {
			src := mapSource(map[string]string{
				"January.txt":  "h\n1,Gold,2312\n",
				"February.txt": body,
				"March.txt":    "h\n1,Gold,7\n",
			})
			g, report, err := LoadGrid(context.Background(), src, ParseStrict, nil)
			require.Error(t, err)
			assert.True(t, crdb.Is(err, ErrMalformedRow))
			assert.Contains(t, err.Error(), "February.txt")
			assert.Contains(t, err.Error(), "line 2")
			// months before the failure stay loaded, later ones never run
			assert.Equal(t, 2312, g.At(0, 0, 0))
			assert.Equal(t, 0, g.At(2, 0, 0))
			assert.Equal(t, []string{"January"}, report.MonthsLoaded)
		})
		t.Run(name+"/lenient", func(t *testing.T) {
			src := mapSource(map[string]string{
				"February.txt": body + "2,Gold,9\n",
				"March.txt":    "h\n1,Gold,7\n",
			})
			g, report, err := LoadGrid(context.Background(), src, ParseLenient, nil)
			require.NoError(t, err)
			assert.Equal(t, 1, report.MalformedRows)
			assert.Equal(t, 9, g.At(1, 1, 0))
			assert.Equal(t, 7, g.At(2, 0, 0))
		})
	}
}

func TestLoadSplitsEachLineOnCommas(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		gold    int
		oil     int
		unknown int
		applied int
	}{
		{
			name:    "stray quote only spoils its own row",
			body:    "Day,Commodity,Profit\n1,\"Gold,5\n2,Gold,7\n3,Oil,9\n",
			gold:    0,
			oil:     9,
			unknown: 1,
			applied: 2,
		},
		{
			name:    "quoted name is not a catalog name",
			body:    "Day,Commodity,Profit\n1,\"Gold\",5\n3,Oil,9\n",
			gold:    0,
			oil:     9,
			unknown: 1,
			applied: 1,
		},
		{
			name:    "trailing comma is ignored",
			body:    "Day,Commodity,Profit\n1,Gold,5,\n3,Oil,9,,\n",
			gold:    5,
			oil:     9,
			applied: 2,
		},
		{
			name:    "windows line endings",
			body:    "Day,Commodity,Profit\r\n1,Gold,5\r\n3,Oil,9\r\n",
			gold:    5,
			oil:     9,
			applied: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := mapSource(map[string]string{"January.txt": tt.body})
			g, report, err := LoadGrid(context.Background(), src, ParseStrict, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.gold, g.At(0, 0, 0))
			assert.Equal(t, tt.oil, g.At(0, 2, 1))
			assert.Equal(t, tt.unknown, report.UnknownCommodityRows)
			assert.Equal(t, tt.applied, report.RowsApplied)
			assert.Zero(t, report.MalformedRows)
		})
	}
}

func TestLoadHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := LoadGrid(ctx, mapSource(nil), ParseStrict, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

type closeTracker struct {
	io.Reader
	closed *int
	err    error
}

func (c closeTracker) Close() error {
	*c.closed++
	return c.err
}

type trackingSource struct {
	body     string
	closeErr error
	opened   int
	closed   int
}

func (s *trackingSource) Open(month string) (io.ReadCloser, error) {
	s.opened++
	return closeTracker{Reader: strings.NewReader(s.body), closed: &s.closed, err: s.closeErr}, nil
}

func (s *trackingSource) Name(month string) string { return month }

func TestLoadClosesEverySource(t *testing.T) {
	src := &trackingSource{body: "h\n1,Gold,1\n"}
	_, _, err := LoadGrid(context.Background(), src, ParseStrict, nil)
	require.NoError(t, err)
	assert.Equal(t, model.Months, src.opened)
	assert.Equal(t, src.opened, src.closed)

	src = &trackingSource{body: "h\nbad,Gold,1\n"}
	_, _, err = LoadGrid(context.Background(), src, ParseStrict, nil)
	require.Error(t, err)
	assert.Equal(t, 1, src.opened)
	assert.Equal(t, 1, src.closed)
}

func TestLoadReportsCloseFailure(t *testing.T) {
	src := &trackingSource{body: "h\n1,Gold,1\n", closeErr: errors.New("disk gone")}
	g, report, err := LoadGrid(context.Background(), src, ParseStrict, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Equal(t, 1, src.closed)
	assert.Equal(t, 1, g.At(0, 0, 0))
	assert.Empty(t, report.MonthsLoaded)
}

func TestDiscoverClosesProbedSources(t *testing.T) {
	src := &trackingSource{body: "h\n"}
	statuses := Discover(src)
	assert.Equal(t, model.Months, src.opened)
	assert.Equal(t, src.opened, src.closed)
	assert.True(t, statuses[0].Present)

	src = &trackingSource{body: "h\n", closeErr: errors.New("disk gone")}
	for _, st := range Discover(src) {
		assert.False(t, st.Present, st.Month)
	}
	assert.Equal(t, src.opened, src.closed)
}

func TestParseParseMode(t *testing.T) {
	m, err := ParseParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ParseStrict, m)

	m, err = ParseParseMode("Lenient")
	require.NoError(t, err)
	assert.Equal(t, ParseLenient, m)

	_, err = ParseParseMode("forgiving")
	assert.Error(t, err)
}

func TestDirSourceAndDiscover(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "July.txt"), []byte("h\n1,Gold,3\n"), 0o644))

	src := NewDirSource(dir, "")
	statuses := Discover(src)
	require.Len(t, statuses, model.Months)
	for _, st := range statuses {
		assert.Equal(t, st.Month == "July", st.Present, st.Month)
	}
	assert.Equal(t, filepath.Join(dir, "July.txt"), src.Name("July"))

	g, _, err := LoadGrid(context.Background(), src, ParseStrict, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, g.At(6, 0, 0))
}

func TestWriteSnapshotJSON(t *testing.T) {
	var g model.Grid
	g.Set(0, 0, 0, 2312)
	path := filepath.Join(t.TempDir(), "out", "grid.json")

	require.NoError(t, WriteSnapshotJSON(path, &g, &LoadReport{RowsApplied: 1}))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Gold"`)
	assert.Contains(t, string(raw), "2312")
	assert.Contains(t, string(raw), `"rows_applied": 1`)
}
