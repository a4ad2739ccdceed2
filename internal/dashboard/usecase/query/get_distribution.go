package query

import (
	"context"
	"fmt"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// Labels for two-state status charts
const (
	LabelActive   = "Active"
	LabelInactive = "Inactive"
)

// DistributionHandler builds categorical chart series
type DistributionHandler struct {
	store domain.CountStore
}

// NewDistributionHandler creates a new distribution handler
func NewDistributionHandler(store domain.CountStore) *DistributionHandler {
	return &DistributionHandler{store: store}
}

// UserRoles counts active users per role, one point per declared role
func (h *DistributionHandler) UserRoles(ctx context.Context) (domain.ChartSeries, error) {
	logger.Debug(ctx).Msg("Fetching user role distribution")

	series := domain.NewChartSeries(domain.SeriesCategory, len(domain.AllRoles))
	for _, role := range domain.AllRoles {
		role := role
		n, err := h.store.CountUsers(ctx, domain.UserFilter{Role: &role, Active: domain.Bool(true)})
		if err != nil {
			return domain.ChartSeries{}, fmt.Errorf("failed to count %s users: %w", role, err)
		}
		series.Add(role.Label(), n)
	}
	return series, nil
}

// UserStatus counts active and inactive users
func (h *DistributionHandler) UserStatus(ctx context.Context) (domain.ChartSeries, error) {
	logger.Debug(ctx).Msg("Fetching user status distribution")

	active, err := h.store.CountUsers(ctx, domain.UserFilter{Active: domain.Bool(true)})
	if err != nil {
		return domain.ChartSeries{}, fmt.Errorf("failed to count active users: %w", err)
	}
	inactive, err := h.store.CountUsers(ctx, domain.UserFilter{Active: domain.Bool(false)})
	if err != nil {
		return domain.ChartSeries{}, fmt.Errorf("failed to count inactive users: %w", err)
	}

	series := domain.NewChartSeries(domain.SeriesCategory, 2)
	series.Add(LabelActive, active)
	series.Add(LabelInactive, inactive)
	return series, nil
}

// DiseaseSeverity counts disease definitions per severity, one point per severity
func (h *DistributionHandler) DiseaseSeverity(ctx context.Context) (domain.ChartSeries, error) {
	logger.Debug(ctx).Msg("Fetching disease severity distribution")

	series := domain.NewChartSeries(domain.SeriesCategory, len(domain.AllSeverities))
	for _, severity := range domain.AllSeverities {
		n, err := h.store.CountDiseasesBySeverity(ctx, severity)
		if err != nil {
			return domain.ChartSeries{}, fmt.Errorf("failed to count %s diseases: %w", severity, err)
		}
		series.Add(string(severity), n)
	}
	return series, nil
}

// ConfigurationStatus sums active and inactive rows across farm types, animal types and diseases
func (h *DistributionHandler) ConfigurationStatus(ctx context.Context) (domain.ChartSeries, error) {
	logger.Debug(ctx).Msg("Fetching configuration status distribution")

	var active, inactive int64
	for _, kind := range domain.AllConfigKinds {
		a, err := h.store.CountConfiguration(ctx, kind, domain.Bool(true))
		if err != nil {
			return domain.ChartSeries{}, fmt.Errorf("failed to count active %s: %w", kind, err)
		}
		i, err := h.store.CountConfiguration(ctx, kind, domain.Bool(false))
		if err != nil {
			return domain.ChartSeries{}, fmt.Errorf("failed to count inactive %s: %w", kind, err)
		}
		active += a
		inactive += i
	}

	series := domain.NewChartSeries(domain.SeriesCategory, 2)
	series.Add(LabelActive, active)
	series.Add(LabelInactive, inactive)
	return series, nil
}

// FarmTypes counts farms per farm type. Types with no farms are left out.
func (h *DistributionHandler) FarmTypes(ctx context.Context) (domain.ChartSeries, error) {
	logger.Debug(ctx).Msg("Fetching farm type distribution")

	rows, err := h.store.CountFarmsByType(ctx)
	if err != nil {
		return domain.ChartSeries{}, fmt.Errorf("failed to count farms by type: %w", err)
	}

	series := domain.NewChartSeries(domain.SeriesCategory, len(rows))
	for _, row := range rows {
		if row.Count > 0 {
			series.Add(row.TypeName, row.Count)
		}
	}
	return series, nil
}
