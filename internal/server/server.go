// Package server provides the local dev server for a built site.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumenlabs/lumen/internal/site"
)

// Options configure the dev server.
type Options struct {
	Addr string
	Root string
}

// Server serves a built output directory over HTTP.
type Server struct {
	logger zerolog.Logger
	opts   Options
	http   *http.Server
}

// New constructs a dev server for the built site at opts.Root.
func New(logger zerolog.Logger, opts Options) (*Server, error) {
	if opts.Root == "" {
		return nil, errors.New("output root is required")
	}
	if opts.Addr == "" {
		opts.Addr = "127.0.0.1:8787"
	}

	s := &Server{logger: logger, opts: opts}
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.requestLogger(s.handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler exposes the routing handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().
		Str("addr", s.opts.Addr).
		Str("root", s.opts.Root).
		Msg("dev server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info().Msg("dev server stopped")
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(s.opts.Root))
	mux.Handle("/assets/", fileServer)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		route, ok := site.RouteFor(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		page := filepath.Join(s.opts.Root, filepath.FromSlash(route.OutputPath()))
		if _, err := os.Stat(page); err != nil {
			http.Error(w, "page not built; run lumen build", http.StatusNotFound)
			return
		}
		http.ServeFile(w, r, page)
	})

	return mux
}

// requestLogger tags each request with an ID and logs method, path and timing.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := strings.Split(uuid.New().String(), "-")[0]
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		s.logger.Debug().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
