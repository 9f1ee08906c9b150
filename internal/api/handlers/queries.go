package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"commodity-profits/internal/analysis"
	"commodity-profits/internal/api/models"
	"commodity-profits/internal/model"
)

// QueryHandler serves the analysis queries over a grid that was fully loaded
// before the router started. Handlers only read from it.
type QueryHandler struct {
	grid *model.Grid
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(grid *model.Grid) *QueryHandler {
	return &QueryHandler{grid: grid}
}

// MonthLeader handles GET /api/v1/months/:month/leader
func (h *QueryHandler) MonthLeader(c *gin.Context) {
	var uri models.MonthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_MONTH", err)
		return
	}
	name, total := analysis.MostProfitableCommodityInMonth(h.grid, *uri.Month)
	c.JSON(http.StatusOK, models.MonthLeaderResponse{
		Month:     model.MonthNames[*uri.Month],
		Commodity: name,
		Total:     total,
	})
}

// DayTotal handles GET /api/v1/months/:month/days/:day/total
func (h *QueryHandler) DayTotal(c *gin.Context) {
	var uri models.DayURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_DAY", err)
		return
	}
	c.JSON(http.StatusOK, models.DayTotalResponse{
		Month: model.MonthNames[*uri.Month],
		Day:   uri.Day,
		Total: analysis.TotalProfitOnDay(h.grid, *uri.Month, uri.Day),
	})
}

// BestDay handles GET /api/v1/months/:month/best-day
func (h *QueryHandler) BestDay(c *gin.Context) {
	var uri models.MonthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_MONTH", err)
		return
	}
	c.JSON(http.StatusOK, models.BestDayResponse{
		Month: model.MonthNames[*uri.Month],
		Day:   analysis.BestDayOfMonth(h.grid, *uri.Month),
	})
}

// Swing handles GET /api/v1/months/:month/swing
func (h *QueryHandler) Swing(c *gin.Context) {
	var uri models.MonthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_MONTH", err)
		return
	}
	c.JSON(http.StatusOK, models.SwingResponse{
		Month: model.MonthNames[*uri.Month],
		Swing: analysis.BiggestDailySwing(h.grid, *uri.Month),
	})
}

// BestWeek handles GET /api/v1/months/:month/best-week
func (h *QueryHandler) BestWeek(c *gin.Context) {
	var uri models.MonthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_MONTH", err)
		return
	}
	c.JSON(http.StatusOK, models.BestWeekResponse{
		Month: model.MonthNames[*uri.Month],
		Week:  analysis.BestWeekOfMonth(h.grid, *uri.Month),
	})
}

// Range handles GET /api/v1/commodities/:commodity/range?from=&to=
func (h *QueryHandler) Range(c *gin.Context) {
	var uri models.CommodityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_COMMODITY", err)
		return
	}
	var q models.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "INVALID_RANGE", err)
		return
	}
	c.JSON(http.StatusOK, models.RangeResponse{
		Commodity: uri.Commodity,
		From:      q.From,
		To:        q.To,
		Total:     analysis.CommodityProfitInRange(h.grid, uri.Commodity, q.From, q.To),
	})
}

// BestMonth handles GET /api/v1/commodities/:commodity/best-month
func (h *QueryHandler) BestMonth(c *gin.Context) {
	var uri models.CommodityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_COMMODITY", err)
		return
	}
	c.JSON(http.StatusOK, models.BestMonthResponse{
		Commodity: uri.Commodity,
		Month:     analysis.BestMonthForCommodity(h.grid, uri.Commodity),
	})
}

// LossStreak handles GET /api/v1/commodities/:commodity/loss-streak
func (h *QueryHandler) LossStreak(c *gin.Context) {
	var uri models.CommodityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_COMMODITY", err)
		return
	}
	c.JSON(http.StatusOK, models.LossStreakResponse{
		Commodity: uri.Commodity,
		Days:      analysis.ConsecutiveLossDays(h.grid, uri.Commodity),
	})
}

// Above handles GET /api/v1/commodities/:commodity/above?threshold=
func (h *QueryHandler) Above(c *gin.Context) {
	var uri models.CommodityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_COMMODITY", err)
		return
	}
	var q models.ThresholdQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "INVALID_THRESHOLD", err)
		return
	}
	c.JSON(http.StatusOK, models.ThresholdResponse{
		Commodity: uri.Commodity,
		Threshold: *q.Threshold,
		Days:      analysis.DaysAboveThreshold(h.grid, uri.Commodity, *q.Threshold),
	})
}

// Compare handles GET /api/v1/compare?a=&b=
func (h *QueryHandler) Compare(c *gin.Context) {
	var q models.CompareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "INVALID_COMMODITY", err)
		return
	}
	c.JSON(http.StatusOK, models.CompareResponse{
		A:      q.A,
		B:      q.B,
		Result: analysis.CompareTwoCommodities(h.grid, q.A, q.B),
	})
}

// Rank handles GET /api/v1/rank
func (h *QueryHandler) Rank(c *gin.Context) {
	c.JSON(http.StatusOK, models.RankResponse{Rankings: analysis.RankCommodities(h.grid)})
}
