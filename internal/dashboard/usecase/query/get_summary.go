package query

import (
	"context"
	"fmt"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// GetSummaryQuery represents the query for the lightweight polling counts
type GetSummaryQuery struct{}

// GetSummaryHandler handles get summary query
type GetSummaryHandler struct {
	store domain.CountStore
}

// NewGetSummaryHandler creates a new get summary handler
func NewGetSummaryHandler(store domain.CountStore) *GetSummaryHandler {
	return &GetSummaryHandler{store: store}
}

// Handle executes the get summary query
func (h *GetSummaryHandler) Handle(ctx context.Context, _ GetSummaryQuery) (map[string]int64, error) {
	logger.Debug(ctx).Msg("Fetching summary counts")

	admin, vet := domain.RoleAdmin, domain.RoleVeterinaryOfficer
	active := domain.Bool(true)

	counters := []struct {
		key string
		fn  func() (int64, error)
	}{
		{domain.SummaryAdminCount, func() (int64, error) { return h.store.CountUsers(ctx, domain.UserFilter{Role: &admin}) }},
		{domain.SummaryVetCount, func() (int64, error) { return h.store.CountUsers(ctx, domain.UserFilter{Role: &vet}) }},
		{domain.SummaryTotalFarms, func() (int64, error) { return h.store.CountFarms(ctx, nil) }},
		{domain.SummaryTotalAnimals, func() (int64, error) { return h.store.CountAnimals(ctx) }},
		{domain.SummaryTotalDiseaseReports, func() (int64, error) { return h.store.CountDiseaseReports(ctx, nil) }},
		{domain.SummaryActiveFarmTypes, func() (int64, error) {
			return h.store.CountConfiguration(ctx, domain.ConfigFarmTypes, active)
		}},
		{domain.SummaryActiveAnimalTypes, func() (int64, error) {
			return h.store.CountConfiguration(ctx, domain.ConfigAnimalTypes, active)
		}},
		{domain.SummaryActiveDiseases, func() (int64, error) {
			return h.store.CountConfiguration(ctx, domain.ConfigDiseases, active)
		}},
		{domain.SummaryNotifiableDiseases, func() (int64, error) { return h.store.CountNotifiableDiseases(ctx) }},
	}

	summary := make(map[string]int64, len(counters))
	for _, c := range counters {
		n, err := c.fn()
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.key, err)
		}
		summary[c.key] = n
	}
	return summary, nil
}
