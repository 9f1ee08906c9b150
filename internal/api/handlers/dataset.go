package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"commodity-profits/internal/api/models"
	"commodity-profits/internal/data"
	"commodity-profits/internal/model"
)

// DatasetHandler reports what the startup load found.
type DatasetHandler struct {
	mode    data.ParseMode
	sources []data.SourceStatus
	report  *data.LoadReport
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(mode data.ParseMode, sources []data.SourceStatus, report *data.LoadReport) *DatasetHandler {
	return &DatasetHandler{mode: mode, sources: sources, report: report}
}

// Describe handles GET /api/v1/dataset
func (h *DatasetHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, models.DatasetResponse{
		Months:      model.MonthNames[:],
		Commodities: model.CommodityNames[:],
		ParseMode:   string(h.mode),
		Sources:     h.sources,
		Report:      h.report,
	})
}
