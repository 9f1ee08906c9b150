// Package api exposes the query engine over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"commodity-profits/internal/api/handlers"
	"commodity-profits/internal/api/middleware"
	"commodity-profits/internal/data"
	"commodity-profits/internal/model"
)

// Deps is everything the router needs. Grid must be fully loaded; handlers
// share it read-only.
type Deps struct {
	Grid           *model.Grid
	Report         *data.LoadReport
	Sources        []data.SourceStatus
	Mode           data.ParseMode
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter fails only when the request validators cannot be registered.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(d.Logger))
	router.Use(middleware.Logger(d.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(d.AllowedOrigins))

	queries := handlers.NewQueryHandler(d.Grid)
	dataset := handlers.NewDatasetHandler(d.Mode, d.Sources, d.Report)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/dataset", dataset.Describe)

		v1.GET("/months/:month/leader", queries.MonthLeader)
		v1.GET("/months/:month/days/:day/total", queries.DayTotal)
		v1.GET("/months/:month/best-day", queries.BestDay)
		v1.GET("/months/:month/swing", queries.Swing)
		v1.GET("/months/:month/best-week", queries.BestWeek)

		v1.GET("/commodities/:commodity/range", queries.Range)
		v1.GET("/commodities/:commodity/best-month", queries.BestMonth)
		v1.GET("/commodities/:commodity/loss-streak", queries.LossStreak)
		v1.GET("/commodities/:commodity/above", queries.Above)

		v1.GET("/compare", queries.Compare)
		v1.GET("/rank", queries.Rank)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router, nil
}
