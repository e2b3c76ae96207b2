package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"pokeproxy/internal/common/logging"
)

// Server wraps http.Server with the proxy's timeouts and a
// non-blocking Start.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// New creates a new server instance listening on the given port.
func New(handler http.Handler, port string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:        ":" + port,
			Handler:     handler,
			ReadTimeout: 30 * time.Second,
			// The write budget must cover a full downstream forward
			// plus relaying the response.
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Start binds the listen address and serves in the background.
// Bind failures are returned synchronously so startup can abort.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server stopped unexpectedly", err)
		}
	}()

	return nil
}

// Addr returns the bound listen address once Start has succeeded.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
