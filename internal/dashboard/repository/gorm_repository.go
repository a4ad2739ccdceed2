package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
)

// GormCountStore implements domain.CountStore using GORM
type GormCountStore struct {
	db *gorm.DB
}

// NewGormCountStore creates a new GORM count store
func NewGormCountStore(db *gorm.DB) *GormCountStore {
	return &GormCountStore{db: db}
}

func (r *GormCountStore) users(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&domain.User{})
}

func withRole(q *gorm.DB, role *domain.Role) *gorm.DB {
	if role != nil {
		q = q.Where("role = ?", *role)
	}
	return q
}

// CountUsers counts users matching filter
func (r *GormCountStore) CountUsers(ctx context.Context, filter domain.UserFilter) (int64, error) {
	q := withRole(r.users(ctx), filter.Role)
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if filter.District != nil {
		q = q.Where("district = ?", *filter.District)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountActiveUsersByProvince groups active users by province
func (r *GormCountStore) CountActiveUsersByProvince(ctx context.Context, role *domain.Role) ([]domain.ProvinceCount, error) {
	var rows []struct {
		Province domain.Province
		Count    int64
	}
	q := withRole(r.users(ctx), role).
		Select("province, COUNT(*) AS count").
		Where("active = ? AND province IS NOT NULL", true).
		Group("province")
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count users by province: %w", err)
	}

	out := make([]domain.ProvinceCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProvinceCount{Province: row.Province, Count: row.Count})
	}
	return out, nil
}

// CountActiveUsersByDistrict groups active users of one province by district
func (r *GormCountStore) CountActiveUsersByDistrict(ctx context.Context, province domain.Province, role *domain.Role) ([]domain.DistrictCount, error) {
	var rows []struct {
		District domain.District
		Count    int64
	}
	q := withRole(r.users(ctx), role).
		Select("district, COUNT(*) AS count").
		Where("active = ? AND province = ? AND district IS NOT NULL", true, province).
		Group("district")
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count users by district in %s: %w", province, err)
	}

	out := make([]domain.DistrictCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DistrictCount{District: row.District, Count: row.Count})
	}
	return out, nil
}

// FindActiveUsersInDistrict lists active users of a district
func (r *GormCountStore) FindActiveUsersInDistrict(ctx context.Context, district domain.District, role *domain.Role) ([]domain.User, error) {
	var users []domain.User
	q := withRole(r.db.WithContext(ctx), role).
		Where("district = ? AND active = ?", district, true).
		Order("username")
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users in district %s: %w", district, err)
	}
	return users, nil
}

// FindUsersInProvince lists users of a province regardless of status
func (r *GormCountStore) FindUsersInProvince(ctx context.Context, province domain.Province, role *domain.Role) ([]domain.User, error) {
	var users []domain.User
	q := withRole(r.db.WithContext(ctx), role).
		Where("province = ?", province).
		Order("username")
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users in province %s: %w", province, err)
	}
	return users, nil
}

func configModel(kind domain.ConfigKind) (interface{}, error) {
	switch kind {
	case domain.ConfigFarmTypes:
		return &domain.FarmType{}, nil
	case domain.ConfigAnimalTypes:
		return &domain.AnimalType{}, nil
	case domain.ConfigDiseases:
		return &domain.Disease{}, nil
	}
	return nil, fmt.Errorf("unknown configuration kind %d", int(kind))
}

// CountConfiguration counts one configuration collection, optionally by status
func (r *GormCountStore) CountConfiguration(ctx context.Context, kind domain.ConfigKind, active *bool) (int64, error) {
	model, err := configModel(kind)
	if err != nil {
		return 0, err
	}
	q := r.db.WithContext(ctx).Model(model)
	if active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}
	return count, nil
}

// CountNotifiableDiseases counts diseases flagged for mandatory reporting
func (r *GormCountStore) CountNotifiableDiseases(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Disease{}).
		Where("is_notifiable = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count notifiable diseases: %w", err)
	}
	return count, nil
}

// CountDiseasesBySeverity counts disease definitions at one severity
func (r *GormCountStore) CountDiseasesBySeverity(ctx context.Context, severity domain.Severity) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Disease{}).
		Where("severity = ?", severity).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s diseases: %w", severity, err)
	}
	return count, nil
}

// CountFarms counts farms, optionally by status
func (r *GormCountStore) CountFarms(ctx context.Context, active *bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Farm{})
	if active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count farms: %w", err)
	}
	return count, nil
}

// CountFarmsByType groups farms by the name of their farm type.
// Types without farms do not appear.
func (r *GormCountStore) CountFarmsByType(ctx context.Context) ([]domain.FarmTypeCount, error) {
	var rows []struct {
		TypeName string
		Count    int64
	}
	err := r.db.WithContext(ctx).
		Table("farms f").
		Select("ft.type_name AS type_name, COUNT(f.id) AS count").
		Joins("JOIN farm_types ft ON ft.id = f.farm_type_id").
		Group("ft.type_name").
		Order("ft.type_name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count farms by type: %w", err)
	}

	out := make([]domain.FarmTypeCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FarmTypeCount{TypeName: row.TypeName, Count: row.Count})
	}
	return out, nil
}

// CountAnimals returns the total number of animals
func (r *GormCountStore) CountAnimals(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Animal{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count animals: %w", err)
	}
	return count, nil
}

// CountDiseaseReports counts disease reports, optionally by confirmation
func (r *GormCountStore) CountDiseaseReports(ctx context.Context, confirmed *bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.DiseaseReport{})
	if confirmed != nil {
		q = q.Where("is_confirmed = ?", *confirmed)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count disease reports: %w", err)
	}
	return count, nil
}

func trendModel(kind domain.TrendKind) interface{} {
	switch kind {
	case domain.TrendUsers:
		return &domain.User{}
	case domain.TrendFarms:
		return &domain.Farm{}
	case domain.TrendDiseaseReports:
		return &domain.DiseaseReport{}
	}
	panic(fmt.Sprintf("repository: unknown trend kind %d", int(kind)))
}

// CountCreatedIn counts records created inside a bounded time range
func (r *GormCountStore) CountCreatedIn(ctx context.Context, kind domain.TrendKind, rng domain.TimeRange) (int64, error) {
	q := r.db.WithContext(ctx).Model(trendModel(kind)).
		Where("created_at >= ?", rng.Start)
	if rng.InclusiveEnd {
		q = q.Where("created_at <= ?", rng.End)
	} else {
		q = q.Where("created_at < ?", rng.End)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s records created in range: %w", kind, err)
	}
	return count, nil
}

// AutoMigrate runs database migrations
func (r *GormCountStore) AutoMigrate() error {
	return r.db.AutoMigrate(domain.Models()...)
}

// Ping checks database connectivity
func (r *GormCountStore) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
