package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtside/heatmap-backend-go/internal/service"
	"github.com/courtside/heatmap-backend-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for the impact heatmap
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: service}
}

// GetHeatmap handles GET /api/v1/heatmap
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	result, err := h.service.Heatmap()
	if err != nil {
		response.InternalError(c, "Failed to build heatmap", err)
		return
	}

	response.Success(c, result)
}

// GetCell handles GET /api/v1/heatmap/cells/:bx/:bz — the
// click-to-drill-down lookup from a grid cell to its sessions
func (h *HeatmapHandler) GetCell(c *gin.Context) {
	bx, err := strconv.Atoi(c.Param("bx"))
	if err != nil {
		response.BadRequest(c, "Invalid bx coordinate", err)
		return
	}
	bz, err := strconv.Atoi(c.Param("bz"))
	if err != nil {
		response.BadRequest(c, "Invalid bz coordinate", err)
		return
	}

	prov, err := h.service.QueryCell(bx, bz)
	if err != nil {
		response.InternalError(c, "Failed to query cell", err)
		return
	}
	if prov == nil {
		response.NotFound(c, "Cell is empty")
		return
	}

	response.Success(c, prov)
}
