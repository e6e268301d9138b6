package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/bcn-heatmap-go/internal/service"
	"github.com/jengzang/bcn-heatmap-go/pkg/response"
)

// BoundaryHandler handles HTTP requests for district boundaries
type BoundaryHandler struct {
	service *service.BoundaryService
}

// NewBoundaryHandler creates a new boundary handler
func NewBoundaryHandler(service *service.BoundaryService) *BoundaryHandler {
	return &BoundaryHandler{service: service}
}

// GetBoundaries handles GET /api/boundaries/:district
func (h *BoundaryHandler) GetBoundaries(c *gin.Context) {
	data, err := h.service.GetBoundaries(c.Param("district"))
	if err != nil {
		if errors.Is(err, service.ErrBoundariesNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error(), err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
