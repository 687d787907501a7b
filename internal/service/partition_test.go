package service_test

import (
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronicboy1/sql-paginatorr/internal/config"
	"github.com/tronicboy1/sql-paginatorr/internal/service"
	"github.com/tronicboy1/sql-paginatorr/pkg/paginator"
)

func newSvc(maxPairs, defaultPageSize uint) service.PartitionService {
	limits := config.PagingConfig{MaxPairs: maxPairs, DefaultPageSize: defaultPageSize}
	return service.NewPartitionService(limits, zerolog.New(io.Discard))
}

func TestPartitionService_Chunks_OK(t *testing.T) {
	svc := newSvc(100, 10)

	res, err := svc.Chunks(250, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint(250), res.ChunkSize)
	assert.Equal(t, uint(1000), res.Total)
	assert.Equal(t, 4, res.Count)
	assert.Equal(t, paginator.LimitOffsetPair{Offset: 750, Limit: 1000}, res.Pairs[3])
}

func TestPartitionService_Chunks_InvalidChunkSize(t *testing.T) {
	svc := newSvc(100, 10)

	for _, tc := range []struct{ chunk, total uint }{{250, 1023}, {250, 1001}, {0, 10}} {
		_, err := svc.Chunks(tc.chunk, tc.total)
		assert.ErrorIs(t, err, paginator.ErrInvalidChunkSize)
		assert.False(t, errors.Is(err, service.ErrInvalidInput))
	}
}

func TestPartitionService_Chunks_OverBudget(t *testing.T) {
	svc := newSvc(3, 10)

	_, err := svc.Chunks(250, 1000)
	require.ErrorIs(t, err, service.ErrInvalidInput)

	fe := service.FieldErrors(err)
	require.Len(t, fe, 1)
	assert.Equal(t, "total", fe[0].Field)
	assert.Equal(t, "would produce 4 pairs, at most 3 allowed", fe[0].Message)

	// exactly at the budget is fine
	res, err := svc.Chunks(250, 750)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
}

func TestPartitionService_Page(t *testing.T) {
	svc := newSvc(100, 10)

	size := uint(10)
	res, err := svc.Page(1, &size)
	require.NoError(t, err)
	assert.Equal(t, paginator.LimitOffsetPair{Offset: 10, Limit: 20}, res.Pair)

	// nil size selects the configured default
	res, err = svc.Page(2, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(10), res.PageSize)
	assert.Equal(t, paginator.LimitOffsetPair{Offset: 20, Limit: 30}, res.Pair)
}

func TestPartitionService_Page_ZeroSize(t *testing.T) {
	svc := newSvc(100, 10)

	zero := uint(0)
	_, err := svc.Page(0, &zero)
	assert.ErrorIs(t, err, paginator.ErrInvalidPageSize)
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, service.FieldErrors(nil))
	assert.Nil(t, service.FieldErrors(errors.New("plain")))
	assert.Nil(t, service.NewInvalidInput(nil))

	err := service.NewInvalidInput([]service.FieldError{{Field: "total", Message: "bad"}})
	assert.EqualError(t, err, "invalid input")
	assert.Equal(t, []service.FieldError{{Field: "total", Message: "bad"}}, service.FieldErrors(err))
}
