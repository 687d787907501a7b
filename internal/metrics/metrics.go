// Package metrics holds the Prometheus collectors for the partitioner service.
//
// Exposed series:
//   - sql_paginator_partition_requests_total{operation, outcome} (Counter)
//   - sql_paginator_pairs_generated{operation} (Histogram): pairs returned per successful request
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sql_paginator"

// Operation label values.
const (
	OpChunks = "chunks"
	OpPage   = "page"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

var (
	PartitionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partition_requests_total",
			Help:      "Partition requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	PairsGenerated = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pairs_generated",
			Help:      "Number of limit/offset pairs returned per request",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"operation"},
	)
)

// Observe records a finished request.
func Observe(operation string, pairs int, err error) {
	if err != nil {
		PartitionRequests.WithLabelValues(operation, OutcomeRejected).Inc()
		return
	}
	PartitionRequests.WithLabelValues(operation, OutcomeOK).Inc()
	PairsGenerated.WithLabelValues(operation).Observe(float64(pairs))
}
