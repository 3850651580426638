package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"trainerbills/internal/domain"
	"trainerbills/internal/service"
)

// InvoiceHandler exposes the invoice generation pipeline over HTTP.
type InvoiceHandler struct {
	pipeline    service.PipelineService
	archivePath string
	archiveName string
}

// NewInvoiceHandler creates a new InvoiceHandler. archivePath is the fixed
// location the packager publishes to.
func NewInvoiceHandler(pipeline service.PipelineService, archivePath, archiveName string) *InvoiceHandler {
	return &InvoiceHandler{
		pipeline:    pipeline,
		archivePath: archivePath,
		archiveName: archiveName,
	}
}

// generateRequest is the DTO for invoice generation requests.
type generateRequest struct {
	BillingDate string `json:"billing_date" binding:"required"`
}

// generateResponse echoes the run outcome back to the operator.
type generateResponse struct {
	State          domain.RunState          `json:"state"`
	TargetDate     string                   `json:"target_date"`
	AvailableDates []string                 `json:"available_dates"`
	MatchCount     int                      `json:"match_count"`
	Invoices       []domain.RenderedInvoice `json:"invoices,omitempty"`
	ArchiveName    string                   `json:"archive_name,omitempty"`
	DownloadURL    string                   `json:"download_url,omitempty"`
}

// Generate handles POST /api/v1/invoices/generate
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "billing_date is required", err.Error())
		return
	}

	res, err := h.pipeline.GenerateForDate(c.Request.Context(), req.BillingDate)
	if err != nil {
		HandleError(c, err)
		return
	}

	resp := generateResponse{
		State:          res.State,
		TargetDate:     res.TargetDate.Format("2006-01-02"),
		AvailableDates: res.AvailableDates,
		MatchCount:     res.MatchCount,
	}

	if res.State == domain.StateNoMatch {
		RespondWarning(c, resp, domain.ErrNoMatchingRecords.Error())
		return
	}

	resp.Invoices = res.Invoices
	resp.ArchiveName = res.ArchiveName
	resp.DownloadURL = "/api/v1/invoices/archive"
	RespondOK(c, resp)
}

// DownloadArchive handles GET /api/v1/invoices/archive
func (h *InvoiceHandler) DownloadArchive(c *gin.Context) {
	if _, err := os.Stat(h.archivePath); err != nil {
		HandleError(c, domain.ErrArchiveNotFound)
		return
	}
	c.FileAttachment(h.archivePath, h.archiveName)
}
