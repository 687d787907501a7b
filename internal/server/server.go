// Package server runs the HTTP API with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tronicboy1/sql-paginatorr/internal/config"
	"github.com/tronicboy1/sql-paginatorr/internal/handler"
	"github.com/tronicboy1/sql-paginatorr/internal/service"
)

type Server struct {
	cfg       config.ServerConfig
	log       zerolog.Logger
	lifecycle *handler.Lifecycle
	http      *http.Server
}

// New wires the router, partition service and health state from cfg.
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	lc := &handler.Lifecycle{}
	svc := service.NewPartitionService(cfg.Paging, logger)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(logger))
	handler.Register(r, lc, svc)

	return &Server{
		cfg:       cfg.Server,
		log:       logger.With().Str("module", "server").Logger(),
		lifecycle: lc,
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      r,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		},
	}
}

// Run listens on the configured port until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains: readiness
// flips to 503 and in-flight requests get ShutdownTimeout seconds to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("http server listening")
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.lifecycle.Drain()
	s.log.Info().Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	s.log.Info().Msg("http server stopped")
	return nil
}
