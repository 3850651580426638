package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"trainerbills/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Warning string      `json:"warning,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response. Detail carries the technical
// diagnostic for unexpected failures; this is a single-operator tool, so the
// operator sees the full trace rather than an opaque message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondWarning sends a 200 response carrying a warning instead of a result.
func RespondWarning(c *gin.Context, data interface{}, warning string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Warning: warning})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg, detail string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg, Detail: detail},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidDateInput):
		return http.StatusBadRequest, "INVALID_DATE", "billing date must be dd-mm-yyyy (or dd/mm/yyyy)"
	case errors.Is(err, domain.ErrSourceUnavailable):
		return http.StatusBadGateway, "SOURCE_UNAVAILABLE", "could not read the billing sheet"
	case errors.Is(err, domain.ErrArchiveNotFound):
		return http.StatusNotFound, "ARCHIVE_NOT_FOUND", "no invoice archive has been generated yet"
	case domain.IsMissingField(err):
		return http.StatusUnprocessableEntity, "MISSING_FIELD", "a billing row is missing a required column"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg, err.Error())
}
