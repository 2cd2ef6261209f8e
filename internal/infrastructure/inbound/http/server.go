package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ports "blogsite-service/internal/domain/ports/output"
)

type ServerConfig struct {
	Address      string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type Server struct {
	server *http.Server
	port   int
	log    ports.Logger
}

func NewServer(handler http.Handler, cfg ServerConfig, log ports.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		port: cfg.Port,
		log:  log,
	}
}

// Run blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
