package query

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// GetStatsQuery represents the query to get the dashboard statistics snapshot
type GetStatsQuery struct{}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	store domain.CountStore
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(store domain.CountStore) *GetStatsHandler {
	return &GetStatsHandler{store: store}
}

// Handle executes the get stats query. Every count is fetched concurrently;
// the first failure cancels the rest and no partial snapshot is returned.
func (h *GetStatsHandler) Handle(ctx context.Context, _ GetStatsQuery) (*domain.DashboardStats, error) {
	logger.Debug(ctx).Msg("Fetching comprehensive dashboard statistics")

	var stats domain.DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	count := func(name string, dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return fmt.Errorf("failed to count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	users := func(filter domain.UserFilter) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) { return h.store.CountUsers(ctx, filter) }
	}
	config := func(kind domain.ConfigKind, active *bool) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) { return h.store.CountConfiguration(ctx, kind, active) }
	}
	admin, vet := domain.RoleAdmin, domain.RoleVeterinaryOfficer

	count("users", &stats.TotalUsers, users(domain.UserFilter{}))
	count("active users", &stats.ActiveUsers, users(domain.UserFilter{Active: domain.Bool(true)}))
	count("inactive users", &stats.InactiveUsers, users(domain.UserFilter{Active: domain.Bool(false)}))
	count("admins", &stats.AdminUsers, users(domain.UserFilter{Role: &admin}))
	count("veterinary officers", &stats.VeterinaryOfficerUsers, users(domain.UserFilter{Role: &vet}))

	count("farm types", &stats.TotalFarmTypes, config(domain.ConfigFarmTypes, nil))
	count("active farm types", &stats.ActiveFarmTypes, config(domain.ConfigFarmTypes, domain.Bool(true)))
	count("animal types", &stats.TotalAnimalTypes, config(domain.ConfigAnimalTypes, nil))
	count("active animal types", &stats.ActiveAnimalTypes, config(domain.ConfigAnimalTypes, domain.Bool(true)))
	count("diseases", &stats.TotalDiseases, config(domain.ConfigDiseases, nil))
	count("active diseases", &stats.ActiveDiseases, config(domain.ConfigDiseases, domain.Bool(true)))
	count("notifiable diseases", &stats.NotifiableDiseases, h.store.CountNotifiableDiseases)

	count("farms", &stats.TotalFarms, func(ctx context.Context) (int64, error) {
		return h.store.CountFarms(ctx, nil)
	})
	count("active farms", &stats.ActiveFarms, func(ctx context.Context) (int64, error) {
		return h.store.CountFarms(ctx, domain.Bool(true))
	})
	count("animals", &stats.TotalAnimals, h.store.CountAnimals)
	count("disease reports", &stats.TotalDiseaseReports, func(ctx context.Context) (int64, error) {
		return h.store.CountDiseaseReports(ctx, nil)
	})
	count("confirmed disease reports", &stats.ConfirmedDiseaseReports, func(ctx context.Context) (int64, error) {
		return h.store.CountDiseaseReports(ctx, domain.Bool(true))
	})
	count("pending disease reports", &stats.PendingDiseaseReports, func(ctx context.Context) (int64, error) {
		return h.store.CountDiseaseReports(ctx, domain.Bool(false))
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Int64("users", stats.TotalUsers).
		Int64("farms", stats.TotalFarms).
		Int64("animals", stats.TotalAnimals).
		Int64("disease_reports", stats.TotalDiseaseReports).
		Msg("Dashboard statistics compiled")

	return &stats, nil
}
