package server

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Server wraps http.Server with graceful shutdown and functional options.
// Safe for concurrent use.
type Server struct {
	mu             sync.RWMutex
	addr           string
	httpServer     *http.Server
	log            *slog.Logger
	shutdown       time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration
	maxHeaderBytes int
	tlsConfig      *tls.Config
	running        bool
}

// New creates a Server listening on addr. Without options it uses the
// package defaults and discards logs.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:           addr,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdown:       DefaultShutdownTimeout,
		readTimeout:    DefaultReadTimeout,
		writeTimeout:   DefaultWriteTimeout,
		idleTimeout:    DefaultIdleTimeout,
		maxHeaderBytes: DefaultMaxHeaderBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start serves handler until the context is canceled or serving fails.
// Returns ctx.Err() on cancellation; pair with Stop for a graceful drain.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:           s.addr,
		Handler:        handler,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		TLSConfig:      s.tlsConfig,
	}
	useTLS := s.tlsConfig != nil
	s.mu.Unlock()

	serveErr := make(chan error, 1)
	go func() {
		s.log.InfoContext(ctx, "starting server", "addr", s.addr)

		var err error
		if useTLS {
			err = s.httpServer.ListenAndServeTLS("", "")
		} else {
			err = s.httpServer.ListenAndServe()
		}
		// ErrServerClosed is the normal shutdown signal, not a failure.
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains in-flight requests within the configured shutdown timeout.
// A no-op when the server never started.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.httpServer == nil {
		return nil
	}

	s.log.Info("shutting down server", "timeout", s.shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.running = false
	if err != nil {
		s.log.Error("server shutdown error", "error", err)
		return err
	}

	s.log.Info("server shutdown complete")
	return nil
}

// Run adapts the server lifecycle to errgroup.Go: the returned function
// starts the server, waits for context cancellation and stops gracefully.
// Cancellation is a clean exit, not an error.
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		serveErr := make(chan error, 1)
		go func() {
			serveErr <- s.Start(ctx, handler)
		}()

		select {
		case <-ctx.Done():
			if err := s.Stop(); err != nil {
				s.log.Error("failed to stop server on context cancellation", "error", err)
			}
			<-serveErr
			return nil
		case err := <-serveErr:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Run starts a server with default settings and blocks until ctx ends.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	return New(addr).Start(ctx, handler)
}
