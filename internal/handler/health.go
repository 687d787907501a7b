package handler

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// ErrDraining is reported by readiness once shutdown has begun.
var ErrDraining = errors.New("server is draining")

// Pinger is the minimal contract I need to check readiness.
// I keep it local to the handler package to avoid coupling and simplify tests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Lifecycle is the process-level readiness state. There are no backing stores
// to probe, so the server is ready until it starts draining.
type Lifecycle struct {
	draining atomic.Bool
}

// Drain flips readiness to unavailable so load balancers stop routing here.
func (l *Lifecycle) Drain() { l.draining.Store(true) }

func (l *Lifecycle) Ping(_ context.Context) error {
	if l.draining.Load() {
		return ErrDraining
	}
	return nil
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	probe Pinger
}

func NewHealthHandler(probe Pinger) *HealthHandler {
	return &HealthHandler{probe: probe}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.probe.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
