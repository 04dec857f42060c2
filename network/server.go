package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/lixenwraith/snake/core"
)

const shutdownTimeout = time.Second

// Server exposes a Hub over HTTP
type Server struct {
	cfg      *Config
	hub      *Hub
	listener net.Listener
	srv      *http.Server
}

// Listen binds the configured address
func Listen(cfg *Config, hub *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("spectator listen on %s: %w", cfg.Address, err)
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, hub)

	return &Server{
		cfg:      cfg,
		hub:      hub,
		listener: ln,
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Addr returns the bound address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve runs in the background until ctx is done, then disconnects spectators
func (s *Server) Serve(ctx context.Context) {
	log.Printf("spectator feed on ws://%s%s", s.listener.Addr(), s.cfg.Path)

	core.Go(func() {
		if err := s.srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server stopped: %v", err)
		}
	})

	core.Go(func() {
		<-ctx.Done()
		s.hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("spectator shutdown: %v", err)
		}
	})
}
