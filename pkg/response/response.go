// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tronicboy1/sql-paginatorr/internal/service"
	"github.com/tronicboy1/sql-paginatorr/pkg/paginator"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain error into an HTTP status and payload.
// Partitioner errors are well-formed requests with unusable numbers, hence 422.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, paginator.ErrInvalidChunkSize):
		return http.StatusUnprocessableEntity, ErrorPayload{Error: "invalid_chunk_size", Message: err.Error()}
	case errors.Is(err, paginator.ErrInvalidPageSize):
		return http.StatusUnprocessableEntity, ErrorPayload{Error: "invalid_page_size", Message: err.Error()}
	case errors.Is(err, paginator.ErrRangeOverflow):
		return http.StatusUnprocessableEntity, ErrorPayload{Error: "range_overflow", Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
