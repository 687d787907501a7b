package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tronicboy1/sql-paginatorr/internal/service"
)

// APIV1Prefix is the base path for the public HTTP API v1.
const APIV1Prefix = "/api/v1"

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, probe Pinger, svc service.PartitionService) {
	h := NewHealthHandler(probe)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPartitionHandler(svc).Register(api)
	}
}
