package server

import (
	"context"
	"net/http"

	"github.com/akhmetovr/go-grid-keeper/internal/config"
	"github.com/akhmetovr/go-grid-keeper/internal/logger"
)

// Server is the HTTP front of the reference driver service.
type Server struct {
	server *http.Server
	log    *logger.Logger
}

// NewServer builds the server from its config, handlers included.
func NewServer(cfg *config.ServerConfig, store *DriverStore, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	handler := NewHandler(store, log)

	return &Server{
		server: &http.Server{
			Addr:         cfg.Address,
			Handler:      handler.Init(),
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		log: log,
	}
}

// Run blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.Info().Str("address", s.server.Addr).Msg("http server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")
	return s.server.Shutdown(ctx)
}
