package dashboard

import (
	"context"
	"fmt"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/internal/dashboard/usecase/query"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// Keys of the bulk trend response
const (
	TrendKeyUsers          = "userTrend"
	TrendKeyFarms          = "farmTrend"
	TrendKeyDiseaseReports = "diseaseReportTrend"
)

// Keys of the bulk pie chart response
const (
	ChartKeyUserRoles       = "userRoles"
	ChartKeyUserStatus      = "userStatus"
	ChartKeyConfigStatus    = "configStatus"
	ChartKeyFarmTypes       = "farmTypes"
	ChartKeyDiseaseSeverity = "diseaseSeverity"
)

var trendKeys = map[domain.TrendKind]string{
	domain.TrendUsers:          TrendKeyUsers,
	domain.TrendFarms:          TrendKeyFarms,
	domain.TrendDiseaseReports: TrendKeyDiseaseReports,
}

// Service is the single entry point for dashboard analytics
type Service struct {
	stats         *query.GetStatsHandler
	summary       *query.GetSummaryHandler
	distributions *query.DistributionHandler
	trends        *query.GetTrendHandler
	geography     *query.GeographyHandler
}

// NewService creates a new dashboard service
func NewService(
	stats *query.GetStatsHandler,
	summary *query.GetSummaryHandler,
	distributions *query.DistributionHandler,
	trends *query.GetTrendHandler,
	geography *query.GeographyHandler,
) *Service {
	return &Service{
		stats:         stats,
		summary:       summary,
		distributions: distributions,
		trends:        trends,
		geography:     geography,
	}
}

// NewServiceFromStore builds every query handler over one store
func NewServiceFromStore(store domain.CountStore, clock domain.Clock) *Service {
	return NewService(
		query.NewGetStatsHandler(store),
		query.NewGetSummaryHandler(store),
		query.NewDistributionHandler(store),
		query.NewGetTrendHandler(store, clock),
		query.NewGeographyHandler(store),
	)
}

// Statistics returns a fresh statistics snapshot
func (s *Service) Statistics(ctx context.Context) (*domain.DashboardStats, error) {
	return s.stats.Handle(ctx, query.GetStatsQuery{})
}

// SummaryCounts returns the headline counters keyed by name
func (s *Service) SummaryCounts(ctx context.Context) (map[string]int64, error) {
	return s.summary.Handle(ctx, query.GetSummaryQuery{})
}

// UserRoleDistribution returns active users per role
func (s *Service) UserRoleDistribution(ctx context.Context) (domain.ChartSeries, error) {
	return s.distributions.UserRoles(ctx)
}

// UserStatusDistribution returns active and inactive user counts
func (s *Service) UserStatusDistribution(ctx context.Context) (domain.ChartSeries, error) {
	return s.distributions.UserStatus(ctx)
}

// ConfigurationStatusDistribution returns active and inactive configuration counts
func (s *Service) ConfigurationStatusDistribution(ctx context.Context) (domain.ChartSeries, error) {
	return s.distributions.ConfigurationStatus(ctx)
}

// FarmTypeDistribution returns farms per farm type
func (s *Service) FarmTypeDistribution(ctx context.Context) (domain.ChartSeries, error) {
	return s.distributions.FarmTypes(ctx)
}

// DiseaseSeverityDistribution returns disease definitions per severity
func (s *Service) DiseaseSeverityDistribution(ctx context.Context) (domain.ChartSeries, error) {
	return s.distributions.DiseaseSeverity(ctx)
}

// RegistrationTrend returns monthly creation counts of one kind
func (s *Service) RegistrationTrend(ctx context.Context, kind domain.TrendKind, months int) (domain.ChartSeries, error) {
	return s.trends.Handle(ctx, query.GetTrendQuery{Kind: kind, Months: months})
}

// AllTrends returns every registration trend over the same window
func (s *Service) AllTrends(ctx context.Context, months int) (map[string]domain.ChartSeries, error) {
	logger.Debug(ctx).Int("months", months).Msg("Fetching all trends")

	out := make(map[string]domain.ChartSeries, len(domain.AllTrendKinds))
	for _, kind := range domain.AllTrendKinds {
		series, err := s.RegistrationTrend(ctx, kind, months)
		if err != nil {
			return nil, err
		}
		out[trendKeys[kind]] = series
	}
	return out, nil
}

// AllPieCharts returns every categorical distribution
func (s *Service) AllPieCharts(ctx context.Context) (map[string]domain.ChartSeries, error) {
	logger.Debug(ctx).Msg("Fetching all pie charts")

	builders := []struct {
		key   string
		build func(context.Context) (domain.ChartSeries, error)
	}{
		{ChartKeyUserRoles, s.UserRoleDistribution},
		{ChartKeyUserStatus, s.UserStatusDistribution},
		{ChartKeyConfigStatus, s.ConfigurationStatusDistribution},
		{ChartKeyFarmTypes, s.FarmTypeDistribution},
		{ChartKeyDiseaseSeverity, s.DiseaseSeverityDistribution},
	}

	out := make(map[string]domain.ChartSeries, len(builders))
	for _, b := range builders {
		series, err := b.build(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s chart: %w", b.key, err)
		}
		out[b.key] = series
	}
	return out, nil
}

// ProvinceDistribution returns active users grouped by province
func (s *Service) ProvinceDistribution(ctx context.Context, role *domain.Role) ([]domain.ProvinceDistribution, error) {
	return s.geography.ProvinceDistribution(ctx, role)
}

// DistrictDistribution returns active users for all districts
func (s *Service) DistrictDistribution(ctx context.Context, role *domain.Role) ([]domain.DistrictDistribution, error) {
	return s.geography.DistrictDistribution(ctx, role)
}

// UsersInDistrict lists active users of a district
func (s *Service) UsersInDistrict(ctx context.Context, district *domain.District, role *domain.Role) ([]domain.UserSummary, error) {
	return s.geography.UsersInDistrict(ctx, district, role)
}

// UsersInProvince lists users of a province
func (s *Service) UsersInProvince(ctx context.Context, province domain.Province, role *domain.Role) ([]domain.UserSummary, error) {
	return s.geography.UsersInProvince(ctx, province, role)
}
