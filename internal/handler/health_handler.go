package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	outputDir string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(outputDir string) *HealthHandler {
	return &HealthHandler{outputDir: outputDir}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := os.MkdirAll(h.outputDir, 0o755); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "output directory not writable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
