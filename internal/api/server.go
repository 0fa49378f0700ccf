package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Server represents the portfolio API web server
type Server struct {
	Logger  log.Logger
	Config  *cfg.Config
	Handler *Handler
	server  *http.Server
}

// NewServer creates a new API server
func NewServer(logger log.Logger, config *cfg.Config, handler *Handler) (*Server, error) {
	return &Server{
		Logger:  logger,
		Config:  config,
		Handler: handler,
	}, nil
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	s.Handler.RegisterRoutes(mux)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Http.Port),
		Handler:      s.Handler.corsMiddleware(mux),
		ReadTimeout:  time.Duration(s.Config.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Http.IdleTimeout) * time.Second,
	}

	s.Logger.Info(context.Background(), "Starting API server on port %d", s.Config.Http.Port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		s.Logger.Info(ctx, "Shutting down API server")
		return s.server.Shutdown(ctx)
	}
	return nil
}
