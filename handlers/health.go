package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careercompass/backend/models"
)

// Version is the API version reported by /health
const Version = "1.0.0"

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and which backends it uses
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(storeName, providerMode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "healthy",
			Version:   Version,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Store:     storeName,
			Provider:  providerMode,
		})
	}
}
