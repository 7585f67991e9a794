// Package httpapi serves puzzle queries over HTTP as JSON.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"crosswarped.com/wordhelper"
)

// SolutionsRequest is the body of a POST to /v1/solutions.
type SolutionsRequest struct {
	Green     string `json:"green"`
	Yellow    string `json:"yellow"`
	Available string `json:"available"`
}

// SolutionsResponse is returned by /v1/solutions.
type SolutionsResponse struct {
	Success   bool     `json:"success"`
	Count     int      `json:"count"`
	Solutions []string `json:"solutions"`
	Error     string   `json:"error,omitempty"`
}

// Server answers puzzle queries against a single Filter.
type Server struct {
	filter   *wordhelper.Filter
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics
}

// NewServer creates a Server. Metrics are registered on a registry owned by the server.
func NewServer(filter *wordhelper.Filter, logger *zap.Logger) *Server {
	registry := prometheus.NewRegistry()
	return &Server{
		filter:   filter,
		logger:   logger,
		registry: registry,
		metrics:  newMetrics(registry),
	}
}

// Handler returns the router for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Get("/solutions", s.getSolutions)
		r.Post("/solutions", s.postSolutions)
	})
	return r
}

// ServeSolutions handles a solutions query sent with either GET or POST, for hosts that do their
// own routing.
func (s *Server) ServeSolutions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getSolutions(w, r)
	case http.MethodPost:
		s.postSolutions(w, r)
	default:
		s.writeJSON(w, http.StatusMethodNotAllowed, SolutionsResponse{
			Solutions: []string{},
			Error:     fmt.Sprintf("Method %s not allowed", r.Method),
		})
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "ok: %d words\n", s.filter.Len())
}

func (s *Server) getSolutions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.answer(w, r, SolutionsRequest{
		Green:     q.Get("green"),
		Yellow:    q.Get("yellow"),
		Available: q.Get("available"),
	})
}

func (s *Server) postSolutions(w http.ResponseWriter, r *http.Request) {
	var req SolutionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.badRequests.Inc()
		s.writeJSON(w, http.StatusBadRequest, SolutionsResponse{
			Solutions: []string{},
			Error:     fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}
	s.answer(w, r, req)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request, req SolutionsRequest) {
	c := wordhelper.ParseConstraints(req.Green, req.Yellow, req.Available)

	solutions := []string{}
	for word := range s.filter.Solutions(c) {
		solutions = append(solutions, word)
	}

	s.metrics.queries.WithLabelValues(r.Method).Inc()
	s.metrics.solutions.Observe(float64(len(solutions)))
	s.logger.Debug("answered query",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Stringer("constraints", c),
		zap.Int("solutions", len(solutions)))

	s.writeJSON(w, http.StatusOK, SolutionsResponse{
		Success:   true,
		Count:     len(solutions),
		Solutions: solutions,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, resp SolutionsResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}
