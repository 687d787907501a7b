// Package paginator splits a record count into limit/offset windows for
// chunked range queries.
//
// Everything here is pure arithmetic: no state, no I/O, safe for concurrent use.
package paginator

import "math"

// LimitOffsetPair is a half-open window [Offset, Limit).
// Limit is the exclusive end index, not a row count; use Size for that.
type LimitOffsetPair struct {
	Offset uint `json:"offset"`
	Limit  uint `json:"limit"`
}

// Size returns the number of records covered by the window.
func (p LimitOffsetPair) Size() uint { return p.Limit - p.Offset }

// ValidChunkSize reports whether chunkSize splits total into equal chunks.
func ValidChunkSize(chunkSize, total uint) bool {
	return chunkSize > 0 && total%chunkSize == 0
}

// ChunkPairs returns total/chunkSize contiguous windows covering [0, total).
// Pair i starts at i*chunkSize and the last pair ends at total.
// A chunkSize of zero, or one that leaves a remainder, yields an
// *InvalidChunkSizeError and no pairs.
func ChunkPairs(chunkSize, total uint) ([]LimitOffsetPair, error) {
	if !ValidChunkSize(chunkSize, total) {
		return nil, &InvalidChunkSizeError{ChunkSize: chunkSize, Total: total}
	}

	n := total / chunkSize
	pairs := make([]LimitOffsetPair, 0, n)
	for i := uint(0); i < n; i++ {
		offset := i * chunkSize
		pairs = append(pairs, LimitOffsetPair{Offset: offset, Limit: offset + chunkSize})
	}
	return pairs, nil
}

// MustChunkPairs is like ChunkPairs but panics on invalid input.
// Intended for package-level tables built from constants.
func MustChunkPairs(chunkSize, total uint) []LimitOffsetPair {
	pairs, err := ChunkPairs(chunkSize, total)
	if err != nil {
		panic(err)
	}
	return pairs
}

// PairForPage returns the window of the 0-based page pageIndex.
// No total bound applies; the page may lie past the end of any data set.
func PairForPage(pageIndex, pageSize uint) (LimitOffsetPair, error) {
	if pageSize == 0 {
		return LimitOffsetPair{}, ErrInvalidPageSize
	}
	// (pageIndex+1)*pageSize must fit in uint.
	if pageIndex >= math.MaxUint/pageSize {
		return LimitOffsetPair{}, ErrRangeOverflow
	}
	offset := pageIndex * pageSize
	return LimitOffsetPair{Offset: offset, Limit: offset + pageSize}, nil
}
