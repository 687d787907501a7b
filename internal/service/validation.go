package service

import (
	"fmt"

	"github.com/tronicboy1/sql-paginatorr/pkg/paginator"
)

// checkPairBudget rejects partitions that would produce more pairs than allowed.
// Only meaningful once the chunk size itself is known to be valid.
func checkPairBudget(chunkSize, total, maxPairs uint) error {
	if !paginator.ValidChunkSize(chunkSize, total) {
		return nil
	}
	if n := total / chunkSize; n > maxPairs {
		return NewInvalidInput([]FieldError{{
			Field:   "total",
			Message: fmt.Sprintf("would produce %d pairs, at most %d allowed", n, maxPairs),
		}})
	}
	return nil
}
