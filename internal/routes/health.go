package routes

import (
	"net/http"

	"Seedfund/internal/contracts"
	"Seedfund/internal/logger"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Liveness and database reachability
// @Tags health
// @Produce json
// @Success 200 {object} contracts.HealthResponse
// @Failure 503 {object} contracts.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.HealthCheck == nil {
		c.JSON(http.StatusOK, contracts.HealthResponse{Status: "ok", Database: "unknown"})
		return
	}
	if err := h.HealthCheck(c.Request.Context()); err != nil {
		logger.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, contracts.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, contracts.HealthResponse{Status: "ok", Database: "up"})
}
