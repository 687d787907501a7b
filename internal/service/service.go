// Package service holds the use-case layer between transports and the partitioner.
// Kept intentionally lean: request validation, limits, logging and metrics only.
package service

import (
	"errors"

	"github.com/tronicboy1/sql-paginatorr/pkg/paginator"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInput builds an aggregated validation error if any field errors are present.
// Transports use it for parse failures so they share one error shape with the service.
func NewInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// ChunkResult is the full partition of [0, Total) into equal chunks.
type ChunkResult struct {
	ChunkSize uint                        `json:"chunk_size"`
	Total     uint                        `json:"total"`
	Count     int                         `json:"count"`
	Pairs     []paginator.LimitOffsetPair `json:"pairs"`
}

// PageResult is the window of a single page.
type PageResult struct {
	PageIndex uint                      `json:"page_index"`
	PageSize  uint                      `json:"page_size"`
	Pair      paginator.LimitOffsetPair `json:"pair"`
}

// PartitionService defines the partitioning use cases.
type PartitionService interface {
	Chunks(chunkSize, total uint) (ChunkResult, error)
	// Page computes one page window. A nil pageSize selects the configured default.
	Page(pageIndex uint, pageSize *uint) (PageResult, error)
}
