// Package server wraps the gin router in a tunable http.Server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ShantiHimalaya/shanti-go/internal/application/container"
	"github.com/ShantiHimalaya/shanti-go/internal/presentation/http/routes"
	"github.com/ShantiHimalaya/shanti-go/pkg/config"
)

// Server owns the listener serving the catalog API.
type Server struct {
	httpServer *http.Server
	container  *container.Container
}

// New builds the route table from the container and binds it to a server
// carrying the configured read/write/idle timeouts.
func New(port string, container *container.Container) *Server {
	router := routes.SetupRoutes(container)

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  config.ServerReadTimeout,
			WriteTimeout: config.ServerWriteTimeout,
			IdleTimeout:  config.ServerIdleTimeout,
		},
		container: container,
	}
}

// Start serves requests until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.container.Logger.System().Info("HTTP server listening", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop drains in-flight requests within the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.container.Logger.System().Info("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}
