package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"commodity-profits/internal/api/models"
)

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
