package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtside/heatmap-backend-go/internal/models"
	"github.com/courtside/heatmap-backend-go/internal/service"
	"github.com/courtside/heatmap-backend-go/pkg/response"
)

// SessionHandler handles HTTP requests for sessions
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service *service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// IngestSession handles POST /api/v1/sessions
func (h *SessionHandler) IngestSession(c *gin.Context) {
	var req models.SessionIngest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid session payload", err)
		return
	}

	session, err := h.service.Ingest(req)
	if err != nil {
		response.InternalError(c, "Failed to store session", err)
		return
	}

	response.Success(c, gin.H{
		"session_id":   session.ID,
		"session_name": session.Name,
		"point_count":  session.PointCount,
	})
}

// GetSessions handles GET /api/v1/sessions
func (h *SessionHandler) GetSessions(c *gin.Context) {
	var filter models.SessionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	result, err := h.service.GetSessions(filter)
	if err != nil {
		response.InternalError(c, "Failed to get sessions", err)
		return
	}

	response.Success(c, result)
}

// GetSession handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get session", err)
		return
	}
	if session == nil {
		response.NotFound(c, "Session not found")
		return
	}

	response.Success(c, session)
}

// DeleteSession handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	deleted, err := h.service.DeleteSession(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to delete session", err)
		return
	}
	if !deleted {
		response.NotFound(c, "Session not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "deleted"})
}
