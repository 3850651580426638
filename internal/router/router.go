package router

import (
	"github.com/gin-gonic/gin"

	"trainerbills/internal/handler"
	"trainerbills/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(invoiceH *handler.InvoiceHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	invoices := v1.Group("/invoices")
	invoices.POST("/generate", invoiceH.Generate)
	invoices.GET("/archive", invoiceH.DownloadArchive)

	return r
}
