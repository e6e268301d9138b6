package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/bcn-heatmap-go/internal/models"
	"github.com/jengzang/bcn-heatmap-go/internal/service"
	"github.com/jengzang/bcn-heatmap-go/pkg/response"
)

// PopulationHandler handles HTTP requests for population heatmap data
type PopulationHandler struct {
	service *service.PopulationService
}

// NewPopulationHandler creates a new population handler
func NewPopulationHandler(service *service.PopulationService) *PopulationHandler {
	return &PopulationHandler{service: service}
}

// GetPopulationData handles GET /api/population-data
func (h *PopulationHandler) GetPopulationData(c *gin.Context) {
	var filter models.PopulationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	if filter.Year == "" {
		filter.Year = models.DefaultYear
	}

	result, err := h.service.GetHeatmap(filter)
	if err != nil {
		response.InternalError(c, err.Error(), err)
		return
	}

	c.Header("X-Heatmap-Source", string(result.Outcome))
	response.Success(c, result.Points)
}

// GetDistricts handles GET /api/districts
func (h *PopulationHandler) GetDistricts(c *gin.Context) {
	response.Success(c, models.Districts)
}
