package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hitsa/emp-mgmt/internal/metrics"
	"github.com/hitsa/emp-mgmt/internal/models"
)

// EmployeeService is the use-case surface the HTTP layer depends on.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Get(ctx context.Context, identifier int64) (models.Employee, error)
	Update(ctx context.Context, identifier int64, details models.Employee) (models.Employee, error)
	Delete(ctx context.Context, identifier int64) error
}

// Server holds the HTTP handlers for the employee API. It is stateless and a
// single instance serves all requests.
type Server struct {
	log     *slog.Logger
	roster  EmployeeService
	metrics *metrics.Metrics
}

func NewServer(log *slog.Logger, roster EmployeeService, mtr *metrics.Metrics) *Server {
	return &Server{log: log, roster: roster, metrics: mtr}
}

// Router builds the HTTP routing table. The prometheus Gatherer backs the
// /metrics endpoint; the DBPinger backs /healthz.
func (s *Server) Router(gatherer prometheus.Gatherer, db DBPinger) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(s.observe)

	router.Method(http.MethodGet, "/healthz", NewHealthChecker(db, s.log))
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", s.handleListEmployees)
			r.Post("/", s.handleCreateEmployee)
			r.Get("/{id}", s.handleGetEmployee)
			r.Put("/{id}", s.handleUpdateEmployee)
			r.Delete("/{id}", s.handleDeleteEmployee)
		})
	})

	return router
}

// statusRecorder captures the response code for the request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// observe records request count and duration labelled by route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		s.metrics.HTTPRequestsTotal.WithLabelValues(pattern, r.Method, strconv.Itoa(rec.status)).Inc()
		s.metrics.HTTPRequestDuration.WithLabelValues(pattern, r.Method).Observe(time.Since(startTime).Seconds())
	})
}
