package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/gaia-snake/core"
)

// Server serves a Feed over HTTP
type Server struct {
	config   *Config
	feed     *Feed
	srv      *http.Server
	listener net.Listener

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewServer creates a server for feed at config.Address and config.Path
func NewServer(cfg *Config, feed *Feed) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, feed)
	return &Server{
		config: cfg,
		feed:   feed,
		srv:    &http.Server{Handler: mux},
	}
}

// Start binds and serves in the background
func (s *Server) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return nil // Already running
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("feed listen %s: %w", s.config.Address, err)
	}
	s.listener = ln

	s.wg.Add(1)
	core.Go(func() {
		defer s.wg.Done()
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.feed.log.WithError(err).Error("feed server stopped")
		}
	})
	s.feed.log.WithField("addr", ln.Addr().String()).Info("feed listening")
	return nil
}

// Addr returns the bound address, or "" before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop closes spectators and shuts down the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	s.feed.Close()
	err := s.srv.Shutdown(ctx)
	s.wg.Wait()
	return err
}

// IsRunning returns server state
func (s *Server) IsRunning() bool {
	return s.running.Load()
}
