package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/mrms-cf-etl/internal/adapter/catalog"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GridLister lists recently converted grids.
type GridLister interface {
	Recent(ctx context.Context, product string, limit int) ([]catalog.Entry, error)
}

// maxListLimit caps the limit query parameter of /grids.
const maxListLimit = 1000

// Server exposes health, readiness, metrics, and catalog HTTP endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, and /metrics
// routes, plus /grids when grids is non-nil.
func NewServer(addr string, ready sharedobs.ReadinessChecker, grids GridLister, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}

	mux.Handle("GET /healthz", sharedobs.LivenessHandler())
	mux.Handle("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	if grids != nil {
		mux.HandleFunc("GET /grids", s.handleGrids(grids))
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleGrids(grids GridLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit := 0
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > maxListLimit {
				sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be between 1 and 1000"})
				return
			}
			limit = n
		}

		entries, err := grids.Recent(r.Context(), q.Get("product"), limit)
		if err != nil {
			s.logger.Error("list grids failed", "error", err)
			sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "catalog unavailable"})
			return
		}
		sharedobs.WriteJSON(w, http.StatusOK, map[string]any{"grids": entries, "count": len(entries)})
	}
}
