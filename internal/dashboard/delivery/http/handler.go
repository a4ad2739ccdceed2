package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// DashboardService is the analytics surface served over HTTP
type DashboardService interface {
	Statistics(ctx context.Context) (*domain.DashboardStats, error)
	SummaryCounts(ctx context.Context) (map[string]int64, error)
	UserRoleDistribution(ctx context.Context) (domain.ChartSeries, error)
	UserStatusDistribution(ctx context.Context) (domain.ChartSeries, error)
	ConfigurationStatusDistribution(ctx context.Context) (domain.ChartSeries, error)
	FarmTypeDistribution(ctx context.Context) (domain.ChartSeries, error)
	DiseaseSeverityDistribution(ctx context.Context) (domain.ChartSeries, error)
	RegistrationTrend(ctx context.Context, kind domain.TrendKind, months int) (domain.ChartSeries, error)
	AllTrends(ctx context.Context, months int) (map[string]domain.ChartSeries, error)
	AllPieCharts(ctx context.Context) (map[string]domain.ChartSeries, error)
	ProvinceDistribution(ctx context.Context, role *domain.Role) ([]domain.ProvinceDistribution, error)
	DistrictDistribution(ctx context.Context, role *domain.Role) ([]domain.DistrictDistribution, error)
	UsersInDistrict(ctx context.Context, district *domain.District, role *domain.Role) ([]domain.UserSummary, error)
	UsersInProvince(ctx context.Context, province domain.Province, role *domain.Role) ([]domain.UserSummary, error)
}

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// trendRoutes maps chart path segments to trend kinds
var trendRoutes = map[string]domain.TrendKind{
	"user-trend":           domain.TrendUsers,
	"farm-trend":           domain.TrendFarms,
	"disease-report-trend": domain.TrendDiseaseReports,
}

// DashboardHandler handles HTTP requests for dashboard analytics
type DashboardHandler struct {
	service DashboardService
	auth    *Authenticator
	health  HealthChecker

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewDashboardHandler creates a new dashboard handler and registers its metrics with reg
func NewDashboardHandler(service DashboardService, authenticator *Authenticator, health HealthChecker, reg prometheus.Registerer) *DashboardHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_service_requests_total",
			Help: "Total number of requests to dashboard service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_service_request_duration_seconds",
			Help:    "Duration of dashboard service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	reg.MustRegister(requestCounter, requestLatency)

	return &DashboardHandler{
		service:        service,
		auth:           authenticator,
		health:         health,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *DashboardHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// parseMonths reads the months query parameter. Absent means the default window.
// Range checks happen in the trend builder.
func parseMonths(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("months"))
	if raw == "" {
		return domain.DefaultTrendMonths, nil
	}
	months, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("months", raw, "must be an integer")
	}
	return months, nil
}

func parseDistrictParam(raw string) (*domain.District, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := domain.ParseDistrict(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	logger.Debug(r.Context()).Str("caller", caller.Username).Msg("Dashboard statistics requested")

	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// GetSummary handles GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
	summary, err := h.service.SummaryCounts(r.Context())
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// chart adapts a series builder to an HTTP handler
func (h *DashboardHandler) chart(build func(context.Context) (domain.ChartSeries, error)) CallerHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
		series, err := build(r.Context())
		if err != nil {
			respondFailure(r.Context(), w, err)
			return
		}
		respondJSON(w, http.StatusOK, series)
	}
}

// trend serves one registration trend
func (h *DashboardHandler) trend(kind domain.TrendKind) CallerHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
		months, err := parseMonths(r)
		if err != nil {
			respondFailure(r.Context(), w, err)
			return
		}
		series, err := h.service.RegistrationTrend(r.Context(), kind, months)
		if err != nil {
			respondFailure(r.Context(), w, err)
			return
		}
		respondJSON(w, http.StatusOK, series)
	}
}

// GetAllTrends handles GET /api/dashboard/charts/trends
func (h *DashboardHandler) GetAllTrends(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
	months, err := parseMonths(r)
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	trends, err := h.service.AllTrends(r.Context(), months)
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, trends)
}

// GetAllPieCharts handles GET /api/dashboard/charts/pie-charts
func (h *DashboardHandler) GetAllPieCharts(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	logger.Debug(r.Context()).Str("caller", caller.Username).Msg("All pie charts requested")

	charts, err := h.service.AllPieCharts(r.Context())
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, charts)
}

// GetProvinceDistribution handles GET /api/dashboard/users/province-distribution
func (h *DashboardHandler) GetProvinceDistribution(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
	role, err := domain.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	distribution, err := h.service.ProvinceDistribution(r.Context(), role)
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, distribution)
}

// GetDistrictDistribution handles GET /api/dashboard/users/district-distribution
func (h *DashboardHandler) GetDistrictDistribution(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
	role, err := domain.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	distribution, err := h.service.DistrictDistribution(r.Context(), role)
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, distribution)
}

// GetUsersByProvince handles GET /api/dashboard/users/by-province
func (h *DashboardHandler) GetUsersByProvince(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
	q := r.URL.Query()
	province, err := domain.ParseProvince(q.Get("province"))
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	role, err := domain.ParseRole(q.Get("role"))
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	users, err := h.service.UsersInProvince(r.Context(), province, role)
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUsersByDistrict handles GET /api/dashboard/users/by-district
func (h *DashboardHandler) GetUsersByDistrict(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
	q := r.URL.Query()
	district, err := parseDistrictParam(q.Get("district"))
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	role, err := domain.ParseRole(q.Get("role"))
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	users, err := h.service.UsersInDistrict(r.Context(), district, role)
	if err != nil {
		respondFailure(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// HealthCheck handles GET /health
func (h *DashboardHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// Check database connectivity
	if err := h.health.Ping(ctx); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// RegisterRoutes registers all dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	authed := func(path string, next CallerHandlerFunc) {
		router.HandleFunc(path, h.metricsMiddleware(path, h.auth.AuthMiddleware(next))).Methods("GET")
	}
	admin := func(path string, next CallerHandlerFunc) {
		router.HandleFunc(path, h.metricsMiddleware(path, h.auth.AdminMiddleware(next))).Methods("GET")
	}

	authed("/api/dashboard/stats", h.GetStats)
	authed("/api/dashboard/summary", h.GetSummary)

	// Charts
	authed("/api/dashboard/charts/user-roles", h.chart(h.service.UserRoleDistribution))
	admin("/api/dashboard/charts/user-status", h.chart(h.service.UserStatusDistribution))
	admin("/api/dashboard/charts/config-status", h.chart(h.service.ConfigurationStatusDistribution))
	authed("/api/dashboard/charts/farm-types", h.chart(h.service.FarmTypeDistribution))
	authed("/api/dashboard/charts/disease-severity", h.chart(h.service.DiseaseSeverityDistribution))
	for segment, kind := range trendRoutes {
		authed("/api/dashboard/charts/"+segment, h.trend(kind))
	}
	authed("/api/dashboard/charts/trends", h.GetAllTrends)
	admin("/api/dashboard/charts/pie-charts", h.GetAllPieCharts)

	// Geography
	authed("/api/dashboard/users/province-distribution", h.GetProvinceDistribution)
	authed("/api/dashboard/users/district-distribution", h.GetDistrictDistribution)
	authed("/api/dashboard/users/by-province", h.GetUsersByProvince)
	authed("/api/dashboard/users/by-district", h.GetUsersByDistrict)
}

// RegisterHealthCheck registers health check endpoint
func (h *DashboardHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
}
