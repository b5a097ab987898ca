// Package server exposes the spellchecker over HTTP: JSON endpoints for
// checking text and managing words, plus a WebSocket session for interactive
// correction.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/customdict"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
)

const shutdownTimeout = 30 * time.Second

// Server hosts the spellcheck API around a shared dictionary and checker.
type Server struct {
	checker  *spell.Checker
	dict     *spell.Dictionary
	store    *customdict.Store
	logger   *slog.Logger
	router   *mux.Router
	httpSrv  *http.Server
	upgrader websocket.Upgrader
}

// New assembles the server. store may be nil when no Redis is configured;
// word additions then live only for the process lifetime.
func New(addr string, checker *spell.Checker, dict *spell.Dictionary, store *customdict.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		checker: checker,
		dict:    dict,
		store:   store,
		logger:  logger,
		router:  mux.NewRouter(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.routes()
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.loggingMiddleware(s.router),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/check", s.handleCheck).Methods(http.MethodPost)
	api.HandleFunc("/words", s.handleAddWord).Methods(http.MethodPost)
	api.HandleFunc("/words/{word}", s.handleRemoveWord).Methods(http.MethodDelete)
	api.HandleFunc("/cache", s.handlePurgeCache).Methods(http.MethodDelete)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	api.HandleFunc("/session", s.handleSession).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// mux drops an earlier route's method mismatch once a later route fails
	// on its path, so its built-in 405 handling never fires for this route
	// order. Method-less fallbacks per path answer it instead; unknown paths
	// still fall through to 404.
	api.HandleFunc("/check", s.methodNotAllowed(http.MethodPost))
	api.HandleFunc("/words", s.methodNotAllowed(http.MethodPost))
	api.HandleFunc("/words/{word}", s.methodNotAllowed(http.MethodDelete))
	api.HandleFunc("/cache", s.methodNotAllowed(http.MethodDelete))
	api.HandleFunc("/stats", s.methodNotAllowed(http.MethodGet))
	api.HandleFunc("/session", s.methodNotAllowed(http.MethodGet))
	s.router.HandleFunc("/health", s.methodNotAllowed(http.MethodGet))
}

// Handler returns the server's root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start serves until SIGINT or SIGTERM, then drains connections before
// returning.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
