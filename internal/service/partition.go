package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tronicboy1/sql-paginatorr/internal/config"
	"github.com/tronicboy1/sql-paginatorr/internal/metrics"
	"github.com/tronicboy1/sql-paginatorr/pkg/paginator"
)

// partitionService wraps the pure partitioner with request limits and observability.
type partitionService struct {
	limits config.PagingConfig
	log    zerolog.Logger
}

func NewPartitionService(limits config.PagingConfig, logger zerolog.Logger) PartitionService {
	l := logger.With().Str("module", "service").Str("component", "partition").Logger()
	return &partitionService{limits: limits, log: l}
}

func (s *partitionService) Chunks(chunkSize, total uint) (ChunkResult, error) {
	start := time.Now()

	if err := checkPairBudget(chunkSize, total, s.limits.MaxPairs); err != nil {
		s.log.Debug().Uint("chunk_size", chunkSize).Uint("total", total).Interface("field_errors", FieldErrors(err)).Msg("chunk request over budget")
		metrics.Observe(metrics.OpChunks, 0, err)
		return ChunkResult{}, err
	}

	pairs, err := paginator.ChunkPairs(chunkSize, total)
	metrics.Observe(metrics.OpChunks, len(pairs), err)
	if err != nil {
		// Caller error, not ours: keep it at debug.
		s.log.Debug().Err(err).Uint("chunk_size", chunkSize).Uint("total", total).Msg("chunk size rejected")
		return ChunkResult{}, err
	}

	s.log.Debug().Dur("took", time.Since(start)).Int("pairs", len(pairs)).Msg("chunks generated")
	return ChunkResult{ChunkSize: chunkSize, Total: total, Count: len(pairs), Pairs: pairs}, nil
}

func (s *partitionService) Page(pageIndex uint, pageSize *uint) (PageResult, error) {
	size := s.limits.DefaultPageSize
	if pageSize != nil {
		size = *pageSize
	}

	pair, err := paginator.PairForPage(pageIndex, size)
	if err != nil {
		metrics.Observe(metrics.OpPage, 0, err)
		s.log.Debug().Err(err).Uint("page_index", pageIndex).Uint("page_size", size).Msg("page rejected")
		return PageResult{}, err
	}
	metrics.Observe(metrics.OpPage, 1, nil)
	return PageResult{PageIndex: pageIndex, PageSize: size, Pair: pair}, nil
}
