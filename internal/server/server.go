// Package server serves the dashboard page and the JSON API behind its
// indicator selector.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/junkd0g/kuposhan/internal/config"
	"github.com/junkd0g/kuposhan/internal/diagram"
	"github.com/junkd0g/kuposhan/internal/middleware"
)

// ReducePath is where the page posts selector events.
const ReducePath = "/api/v1/reduce"

// Server holds the router and the render cache.
type Server struct {
	addr    string
	html    diagram.HTMLConfig
	cache   *cache.Cache
	handler http.Handler
}

// New builds a Server from a validated config.
func New(cfg *config.Config) (*Server, error) {
	ttl, err := cfg.TTL()
	if err != nil {
		return nil, err
	}

	s := &Server{
		addr:  cfg.Server.Addr,
		html:  cfg.HTML(),
		cache: newCache(ttl),
	}
	s.html.ReduceURL = ReducePath

	r := mux.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Recovery)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/dataset", s.handleDataset).Methods(http.MethodGet)
	api.HandleFunc("/view", s.handleView).Methods(http.MethodGet)
	api.HandleFunc("/reduce", s.handleReduce).Methods(http.MethodPost)
	api.HandleFunc("/factor-map.svg", s.handleFactorMap).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         86400,
	})
	s.handler = c.Handler(r)

	return s, nil
}

// newCache returns a render cache. ttl 0 keeps entries forever; the data
// never changes while the process runs.
func newCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		return cache.New(cache.NoExpiration, 0)
	}
	return cache.New(ttl, 2*ttl)
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("dashboard listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
