package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commodity-profits/internal/data"
	"commodity-profits/internal/model"
)

func loadFS(t *testing.T, files map[string]string) *model.Grid {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	g, _, err := data.LoadGrid(context.Background(), data.FSSource{FS: fsys, Ext: ".txt"}, data.ParseStrict, nil)
	require.NoError(t, err)
	return g
}

func TestScenarioSingleSource(t *testing.T) {
	g := loadFS(t, map[string]string{
		"January.txt": "Day,Commodity,Profit\n1,Gold,2312\n2,Gold,-50\n",
	})
	assert.Equal(t, 2312, TotalProfitOnDay(g, 0, 1))
	assert.Equal(t, -50, TotalProfitOnDay(g, 0, 2))
	assert.GreaterOrEqual(t, ConsecutiveLossDays(g, "Gold"), 1)
}

func TestScenarioMissingJune(t *testing.T) {
	files := map[string]string{}
	for m, month := range model.MonthNames {
		if month == "June" {
			continue
		}
		var b strings.Builder
		b.WriteString("Day,Commodity,Profit\n")
		for d := 1; d <= model.Days; d++ {
			for _, c := range model.CommodityNames {
				fmt.Fprintf(&b, "%d, %s, %d\n", d, c, (m+1)*d-40)
			}
		}
		files[month+".txt"] = b.String()
	}
	g := loadFS(t, files)

	june := 5
	assert.Equal(t, 1, BestDayOfMonth(g, june))
	assert.Equal(t, 0, TotalProfitOnDay(g, june, 14))
	assert.Equal(t, 0, BiggestDailySwing(g, june))
	assert.Equal(t, "Week 1", BestWeekOfMonth(g, june))
	name, total := MostProfitableCommodityInMonth(g, june)
	assert.Equal(t, "Gold", name)
	assert.Equal(t, 0, total)

	// neighbouring months still loaded
	assert.Equal(t, 5*(5*1-40), TotalProfitOnDay(g, 4, 1))
}
