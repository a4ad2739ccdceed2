package dashboard

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/disease-surveillance/internal/dashboard/delivery/http"
	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/internal/dashboard/repository"
	"github.com/tair/disease-surveillance/internal/dashboard/usecase/query"
	"github.com/tair/disease-surveillance/pkg/auth"
)

// ProvideGormStore provides the GORM count store
func ProvideGormStore(db *gorm.DB) *repository.GormCountStore {
	return repository.NewGormCountStore(db)
}

// ProvideQueryMetrics provides the store latency histogram
func ProvideQueryMetrics(reg prometheus.Registerer) *repository.QueryMetrics {
	return repository.NewQueryMetrics(reg)
}

// ProvideCountStore provides the traced count store used by every query handler
func ProvideCountStore(store *repository.GormCountStore, metrics *repository.QueryMetrics) domain.CountStore {
	return repository.NewTracedCountStore(store, metrics)
}

// ProvideClock provides the wall clock
func ProvideClock() domain.Clock {
	return domain.SystemClock{}
}

// Query Handlers Providers
func ProvideGetStatsHandler(store domain.CountStore) *query.GetStatsHandler {
	return query.NewGetStatsHandler(store)
}

func ProvideGetSummaryHandler(store domain.CountStore) *query.GetSummaryHandler {
	return query.NewGetSummaryHandler(store)
}

func ProvideDistributionHandler(store domain.CountStore) *query.DistributionHandler {
	return query.NewDistributionHandler(store)
}

func ProvideGetTrendHandler(store domain.CountStore, clock domain.Clock) *query.GetTrendHandler {
	return query.NewGetTrendHandler(store, clock)
}

func ProvideGeographyHandler(store domain.CountStore) *query.GeographyHandler {
	return query.NewGeographyHandler(store)
}

// ProvideAuthenticator provides the bearer token gate
func ProvideAuthenticator(validator *auth.Validator) *http.Authenticator {
	return http.NewAuthenticator(validator)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideGormStore,
	ProvideQueryMetrics,
	ProvideCountStore,
)

var QueryHandlerSet = wire.NewSet(
	ProvideClock,
	ProvideGetStatsHandler,
	ProvideGetSummaryHandler,
	ProvideDistributionHandler,
	ProvideGetTrendHandler,
	ProvideGeographyHandler,
)

var ServiceSet = wire.NewSet(
	RepositorySet,
	QueryHandlerSet,
	NewService,
	wire.Bind(new(http.DashboardService), new(*Service)),
)

var HTTPSet = wire.NewSet(
	ServiceSet,
	ProvideAuthenticator,
	wire.Bind(new(http.HealthChecker), new(*repository.GormCountStore)),
	http.NewDashboardHandler,
)
