package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtside/heatmap-backend-go/internal/config"
	"github.com/courtside/heatmap-backend-go/internal/handler"
	"github.com/courtside/heatmap-backend-go/internal/middleware"
)

// SetupRouter wires the HTTP surface of the dashboard backend
func SetupRouter(cfg *config.Config, sessions *handler.SessionHandler, heatmap *handler.HeatmapHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Heatmap Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RatePerMinute, time.Minute))
	{
		group := api.Group("/sessions")
		{
			group.GET("", sessions.GetSessions)
			group.GET("/:id", sessions.GetSession)
			group.POST("", middleware.JWTAuth(cfg.JWTSecret), sessions.IngestSession)
			group.DELETE("/:id", middleware.JWTAuth(cfg.JWTSecret), sessions.DeleteSession)
		}

		heat := api.Group("/heatmap")
		{
			heat.GET("", heatmap.GetHeatmap)
			heat.GET("/cells/:bx/:bz", heatmap.GetCell)
		}
	}

	return r
}
