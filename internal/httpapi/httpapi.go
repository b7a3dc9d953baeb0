// Package httpapi exposes a single tilemap.Map over HTTP using chi.
//
// Every handler runs under one mutex: the map keeps a single grid and a single
// last path, and its engine allows one search in flight.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/tilepath/tilemap"
)

// DefaultMaxCells caps width×height of grids created over HTTP.
const DefaultMaxCells = 1 << 20

// Server serves the map API.
type Server struct {
	mu       sync.Mutex
	m        *tilemap.Map
	logger   *slog.Logger
	maxCells int
}

// Option configures a Server.
type Option func(*Server)

// WithMaxCells bounds the grids POST /api/grid may create. Non-positive
// values keep DefaultMaxCells.
func WithMaxCells(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxCells = n
		}
	}
}

// New wraps m. A nil logger falls back to slog.Default().
func New(m *tilemap.Map, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{m: m, logger: logger, maxCells: DefaultMaxCells}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Routes configures all routes and returns the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/grid", s.GetGrid)
		r.Post("/grid", s.CreateGrid)
		r.Delete("/grid", s.ReleaseGrid)

		r.Put("/cost", s.SetCost)
		r.Get("/cost/{x}/{y}", s.GetCost)

		r.Post("/search", s.Search)
		r.Get("/path", s.GetPath)
		r.Get("/path/{index}", s.GetPathPoint)

		r.Get("/regions", s.GetRegions)
		r.Post("/breach", s.Breach)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// requestLogger logs one line per request once the handler returns.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("HTTP request served.",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error encoding JSON.", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
