package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	okBefore := testutil.ToFloat64(PartitionRequests.WithLabelValues(OpChunks, OutcomeOK))
	rejBefore := testutil.ToFloat64(PartitionRequests.WithLabelValues(OpChunks, OutcomeRejected))

	Observe(OpChunks, 4, nil)
	Observe(OpChunks, 0, errors.New("bad chunk"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(PartitionRequests.WithLabelValues(OpChunks, OutcomeOK)))
	assert.Equal(t, rejBefore+1, testutil.ToFloat64(PartitionRequests.WithLabelValues(OpChunks, OutcomeRejected)))
}

func TestCollectorsRegistered(t *testing.T) {
	Observe(OpPage, 1, nil)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(PairsGenerated, "sql_paginator_pairs_generated"), 1)
}
