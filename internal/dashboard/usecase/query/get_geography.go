package query

import (
	"context"
	"fmt"
	"sort"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// GeographyHandler builds province and district user distributions
type GeographyHandler struct {
	store domain.CountStore
}

// NewGeographyHandler creates a new geography handler
func NewGeographyHandler(store domain.CountStore) *GeographyHandler {
	return &GeographyHandler{store: store}
}

func roleField(role *domain.Role) string {
	if role == nil {
		return "all"
	}
	return string(*role)
}

// ProvinceDistribution returns active user counts for each province that has any,
// sorted by province code. Each entry carries a district breakdown in district order.
func (h *GeographyHandler) ProvinceDistribution(ctx context.Context, role *domain.Role) ([]domain.ProvinceDistribution, error) {
	logger.Debug(ctx).Str("role", roleField(role)).Msg("Fetching user distribution by province")

	rows, err := h.store.CountActiveUsersByProvince(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to count users by province: %w", err)
	}

	out := make([]domain.ProvinceDistribution, 0, len(rows))
	for _, row := range rows {
		breakdown, err := h.districtBreakdown(ctx, row.Province, role)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ProvinceDistribution{
			Province:          row.Province,
			DisplayName:       row.Province.DisplayName(),
			UserCount:         row.Count,
			DistrictBreakdown: breakdown,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Province < out[j].Province })

	logger.Info(ctx).
		Int("provinces", len(out)).
		Str("role", roleField(role)).
		Msg("Fetched user distribution by province")
	return out, nil
}

func (h *GeographyHandler) districtBreakdown(ctx context.Context, province domain.Province, role *domain.Role) (domain.DistrictBreakdown, error) {
	rows, err := h.store.CountActiveUsersByDistrict(ctx, province, role)
	if err != nil {
		return domain.DistrictBreakdown{}, fmt.Errorf("failed to count users by district in %s: %w", province, err)
	}

	counts := make(map[domain.District]int64, len(rows))
	for _, row := range rows {
		counts[row.District] = row.Count
	}

	var breakdown domain.DistrictBreakdown
	for _, district := range province.Districts() {
		if c, ok := counts[district]; ok {
			breakdown.Set(district.DisplayName(), c)
		}
	}
	return breakdown, nil
}

// DistrictDistribution returns active user counts for all districts, sorted by display name
func (h *GeographyHandler) DistrictDistribution(ctx context.Context, role *domain.Role) ([]domain.DistrictDistribution, error) {
	logger.Debug(ctx).Str("role", roleField(role)).Msg("Fetching user distribution by district")

	out := make([]domain.DistrictDistribution, 0, len(domain.AllDistricts))
	for _, district := range domain.AllDistricts {
		district := district
		n, err := h.store.CountUsers(ctx, domain.UserFilter{
			Active:   domain.Bool(true),
			Role:     role,
			District: &district,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to count users in district %s: %w", district, err)
		}
		out = append(out, domain.DistrictDistribution{
			District:    district,
			DisplayName: district.DisplayName(),
			UserCount:   n,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })

	logger.Info(ctx).
		Int("districts", len(out)).
		Str("role", roleField(role)).
		Msg("Fetched user distribution by district")
	return out, nil
}

// UsersInDistrict lists active users of a district. A nil district yields an empty list.
func (h *GeographyHandler) UsersInDistrict(ctx context.Context, district *domain.District, role *domain.Role) ([]domain.UserSummary, error) {
	if district == nil {
		logger.Warn(ctx).Msg("Attempted to fetch users with no district")
		return []domain.UserSummary{}, nil
	}

	users, err := h.store.FindActiveUsersInDistrict(ctx, *district, role)
	if err != nil {
		return nil, fmt.Errorf("failed to find users in district %s: %w", *district, err)
	}

	logger.Info(ctx).
		Int("users", len(users)).
		Str("district", district.DisplayName()).
		Str("role", roleField(role)).
		Msg("Found users in district")
	return domain.Summaries(users), nil
}

// UsersInProvince lists users of a province, active or not
func (h *GeographyHandler) UsersInProvince(ctx context.Context, province domain.Province, role *domain.Role) ([]domain.UserSummary, error) {
	users, err := h.store.FindUsersInProvince(ctx, province, role)
	if err != nil {
		return nil, fmt.Errorf("failed to find users in province %s: %w", province, err)
	}

	logger.Info(ctx).
		Int("users", len(users)).
		Str("province", province.DisplayName()).
		Str("role", roleField(role)).
		Msg("Found users in province")
	return domain.Summaries(users), nil
}
