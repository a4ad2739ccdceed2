package repository

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
)

var tracer = otel.Tracer("dashboard-repository")

// QueryMetrics records store query latency
type QueryMetrics struct {
	latency *prometheus.HistogramVec
}

// NewQueryMetrics creates and registers the store query histogram with reg
func NewQueryMetrics(reg prometheus.Registerer) *QueryMetrics {
	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_store_query_duration_seconds",
			Help:    "Duration of dashboard count store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
	reg.MustRegister(latency)
	return &QueryMetrics{latency: latency}
}

func (m *QueryMetrics) observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.latency.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}

// TracedCountStore wraps a domain.CountStore with a span and a latency sample per query
type TracedCountStore struct {
	next    domain.CountStore
	metrics *QueryMetrics
}

// NewTracedCountStore creates a new store decorator. metrics may be nil.
func NewTracedCountStore(next domain.CountStore, metrics *QueryMetrics) *TracedCountStore {
	return &TracedCountStore{next: next, metrics: metrics}
}

func (s *TracedCountStore) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := tracer.Start(ctx, "repository."+operation, trace.WithAttributes(attrs...))
	begin := time.Now()
	return ctx, func(err error) {
		addDBErrorToSpan(span, err)
		s.metrics.observe(operation, begin, err)
		span.End()
	}
}

func roleAttr(role *domain.Role) attribute.KeyValue {
	if role == nil {
		return attribute.String("user.role", "all")
	}
	return attribute.String("user.role", string(*role))
}

func boolAttr(key string, v *bool) attribute.KeyValue {
	if v == nil {
		return attribute.String(key, "any")
	}
	return attribute.Bool(key, *v)
}

// CountUsers with tracing
func (s *TracedCountStore) CountUsers(ctx context.Context, filter domain.UserFilter) (int64, error) {
	attrs := []attribute.KeyValue{roleAttr(filter.Role), boolAttr("user.active", filter.Active)}
	if filter.District != nil {
		attrs = append(attrs, attribute.String("user.district", string(*filter.District)))
	}
	ctx, done := s.start(ctx, "CountUsers", attrs...)
	count, err := s.next.CountUsers(ctx, filter)
	done(err)
	return count, err
}

// CountActiveUsersByProvince with tracing
func (s *TracedCountStore) CountActiveUsersByProvince(ctx context.Context, role *domain.Role) ([]domain.ProvinceCount, error) {
	ctx, done := s.start(ctx, "CountActiveUsersByProvince", roleAttr(role))
	rows, err := s.next.CountActiveUsersByProvince(ctx, role)
	done(err)
	return rows, err
}

// CountActiveUsersByDistrict with tracing
func (s *TracedCountStore) CountActiveUsersByDistrict(ctx context.Context, province domain.Province, role *domain.Role) ([]domain.DistrictCount, error) {
	ctx, done := s.start(ctx, "CountActiveUsersByDistrict",
		attribute.String("user.province", string(province)), roleAttr(role))
	rows, err := s.next.CountActiveUsersByDistrict(ctx, province, role)
	done(err)
	return rows, err
}

// FindActiveUsersInDistrict with tracing
func (s *TracedCountStore) FindActiveUsersInDistrict(ctx context.Context, district domain.District, role *domain.Role) ([]domain.User, error) {
	ctx, done := s.start(ctx, "FindActiveUsersInDistrict",
		attribute.String("user.district", string(district)), roleAttr(role))
	users, err := s.next.FindActiveUsersInDistrict(ctx, district, role)
	done(err)
	return users, err
}

// FindUsersInProvince with tracing
func (s *TracedCountStore) FindUsersInProvince(ctx context.Context, province domain.Province, role *domain.Role) ([]domain.User, error) {
	ctx, done := s.start(ctx, "FindUsersInProvince",
		attribute.String("user.province", string(province)), roleAttr(role))
	users, err := s.next.FindUsersInProvince(ctx, province, role)
	done(err)
	return users, err
}

// CountConfiguration with tracing
func (s *TracedCountStore) CountConfiguration(ctx context.Context, kind domain.ConfigKind, active *bool) (int64, error) {
	ctx, done := s.start(ctx, "CountConfiguration",
		attribute.String("config.kind", kind.String()), boolAttr("config.active", active))
	count, err := s.next.CountConfiguration(ctx, kind, active)
	done(err)
	return count, err
}

// CountNotifiableDiseases with tracing
func (s *TracedCountStore) CountNotifiableDiseases(ctx context.Context) (int64, error) {
	ctx, done := s.start(ctx, "CountNotifiableDiseases")
	count, err := s.next.CountNotifiableDiseases(ctx)
	done(err)
	return count, err
}

// CountDiseasesBySeverity with tracing
func (s *TracedCountStore) CountDiseasesBySeverity(ctx context.Context, severity domain.Severity) (int64, error) {
	ctx, done := s.start(ctx, "CountDiseasesBySeverity", attribute.String("disease.severity", string(severity)))
	count, err := s.next.CountDiseasesBySeverity(ctx, severity)
	done(err)
	return count, err
}

// CountFarms with tracing
func (s *TracedCountStore) CountFarms(ctx context.Context, active *bool) (int64, error) {
	ctx, done := s.start(ctx, "CountFarms", boolAttr("farm.active", active))
	count, err := s.next.CountFarms(ctx, active)
	done(err)
	return count, err
}

// CountFarmsByType with tracing
func (s *TracedCountStore) CountFarmsByType(ctx context.Context) ([]domain.FarmTypeCount, error) {
	ctx, done := s.start(ctx, "CountFarmsByType")
	rows, err := s.next.CountFarmsByType(ctx)
	done(err)
	return rows, err
}

// CountAnimals with tracing
func (s *TracedCountStore) CountAnimals(ctx context.Context) (int64, error) {
	ctx, done := s.start(ctx, "CountAnimals")
	count, err := s.next.CountAnimals(ctx)
	done(err)
	return count, err
}

// CountDiseaseReports with tracing
func (s *TracedCountStore) CountDiseaseReports(ctx context.Context, confirmed *bool) (int64, error) {
	ctx, done := s.start(ctx, "CountDiseaseReports", boolAttr("report.confirmed", confirmed))
	count, err := s.next.CountDiseaseReports(ctx, confirmed)
	done(err)
	return count, err
}

// CountCreatedIn with tracing
func (s *TracedCountStore) CountCreatedIn(ctx context.Context, kind domain.TrendKind, rng domain.TimeRange) (int64, error) {
	ctx, done := s.start(ctx, "CountCreatedIn",
		attribute.String("trend.kind", kind.String()),
		attribute.String("range.start", rng.Start.Format(time.RFC3339)),
		attribute.String("range.end", rng.End.Format(time.RFC3339)),
		attribute.Bool("range.inclusive_end", rng.InclusiveEnd),
	)
	count, err := s.next.CountCreatedIn(ctx, kind, rng)
	done(err)
	return count, err
}

// Helper function to add database error details to span
func addDBErrorToSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
