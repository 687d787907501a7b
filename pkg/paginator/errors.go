package paginator

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the partitioner. Callers match them with errors.Is.
var (
	ErrInvalidChunkSize = errors.New("chunk size must leave no remainder")
	ErrInvalidPageSize  = errors.New("page size must be greater than zero")
	ErrRangeOverflow    = errors.New("page range overflows uint")
)

// InvalidChunkSizeError reports the inputs that could not be partitioned.
// It unwraps to ErrInvalidChunkSize.
type InvalidChunkSizeError struct {
	ChunkSize uint
	Total     uint
}

func (e *InvalidChunkSizeError) Error() string {
	if e.ChunkSize == 0 {
		return fmt.Sprintf("%s: chunk size is zero (total %d)", ErrInvalidChunkSize, e.Total)
	}
	return fmt.Sprintf("%s: total %d %% chunk size %d = %d",
		ErrInvalidChunkSize, e.Total, e.ChunkSize, e.Total%e.ChunkSize)
}

func (e *InvalidChunkSizeError) Unwrap() error { return ErrInvalidChunkSize }
