//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/internal/dashboard/repository"
	"github.com/tair/disease-surveillance/pkg/database"
)

type GormCountStoreSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *repository.GormCountStore
}

func TestGormCountStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GormCountStoreSuite))
}

func (s *GormCountStoreSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx, "postgres:16-alpine",
		postgres.WithDatabase("surveillance"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = database.Open(dsn, database.Config{DBName: "surveillance"})
	s.Require().NoError(err)

	s.store = repository.NewGormCountStore(s.db)
	s.Require().NoError(s.store.AutoMigrate())
}

func (s *GormCountStoreSuite) TearDownSuite() {
	if s.container != nil {
		s.NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *GormCountStoreSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE users, farm_types, animal_types, diseases, farms, animals, disease_reports RESTART IDENTITY CASCADE",
	).Error)
}

func (s *GormCountStoreSuite) create(value interface{}) {
	s.Require().NoError(s.db.Omit(clause.Associations).Create(value).Error)
}

func (s *GormCountStoreSuite) user(name string, role domain.Role, active bool, district *domain.District, created time.Time) {
	u := domain.User{
		Username:  name,
		Email:     fmt.Sprintf("%s@example.org", name),
		Password:  "x",
		Role:      role,
		Active:    active,
		District:  district,
		CreatedAt: created,
	}
	if district != nil {
		p := district.Province()
		u.Province = &p
	}
	s.create(&u)
}

func (s *GormCountStoreSuite) TestUserCounts() {
	colombo, kandy := domain.DistrictColombo, domain.DistrictKandy
	now := time.Now().UTC()
	s.user("a1", domain.RoleAdmin, true, &colombo, now)
	s.user("a2", domain.RoleAdmin, false, &colombo, now)
	s.user("v1", domain.RoleVeterinaryOfficer, true, &kandy, now)
	s.user("v2", domain.RoleVeterinaryOfficer, true, &colombo, now)
	s.user("v3", domain.RoleVeterinaryOfficer, true, nil, now)

	total, err := s.store.CountUsers(s.ctx, domain.UserFilter{})
	s.Require().NoError(err)
	s.Equal(int64(5), total)

	inactive, err := s.store.CountUsers(s.ctx, domain.UserFilter{Active: domain.Bool(false)})
	s.Require().NoError(err)
	s.Equal(int64(1), inactive)

	provinces, err := s.store.CountActiveUsersByProvince(s.ctx, nil)
	s.Require().NoError(err)
	s.ElementsMatch([]domain.ProvinceCount{
		{Province: domain.ProvinceWestern, Count: 2},
		{Province: domain.ProvinceCentral, Count: 1},
	}, provinces)

	vet := domain.RoleVeterinaryOfficer
	districts, err := s.store.CountActiveUsersByDistrict(s.ctx, domain.ProvinceWestern, &vet)
	s.Require().NoError(err)
	s.Equal([]domain.DistrictCount{{District: domain.DistrictColombo, Count: 1}}, districts)

	users, err := s.store.FindActiveUsersInDistrict(s.ctx, domain.DistrictColombo, nil)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("a1", users[0].Username)

	all, err := s.store.FindUsersInProvince(s.ctx, domain.ProvinceWestern, nil)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *GormCountStoreSuite) TestConfigurationAndFarms() {
	dairy := domain.FarmType{TypeName: "Dairy", IsActive: true}
	layer := domain.FarmType{TypeName: "Layer", IsActive: false}
	s.create(&dairy)
	s.create(&layer)
	s.create(&domain.Disease{DiseaseName: "FMD", Severity: domain.SeverityCritical, IsNotifiable: true, IsActive: true})
	s.create(&domain.Disease{DiseaseName: "Mastitis", Severity: domain.SeverityMedium, IsActive: false})
	s.create(&domain.Farm{FarmName: "F1", FarmTypeID: dairy.ID, OwnerName: "o", District: "COLOMBO", Province: "WESTERN", IsActive: true})
	s.create(&domain.Farm{FarmName: "F2", FarmTypeID: dairy.ID, OwnerName: "o", District: "COLOMBO", Province: "WESTERN", IsActive: false})

	activeTypes, err := s.store.CountConfiguration(s.ctx, domain.ConfigFarmTypes, domain.Bool(true))
	s.Require().NoError(err)
	s.Equal(int64(1), activeTypes)

	inactiveDiseases, err := s.store.CountConfiguration(s.ctx, domain.ConfigDiseases, domain.Bool(false))
	s.Require().NoError(err)
	s.Equal(int64(1), inactiveDiseases)

	notifiable, err := s.store.CountNotifiableDiseases(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), notifiable)

	critical, err := s.store.CountDiseasesBySeverity(s.ctx, domain.SeverityCritical)
	s.Require().NoError(err)
	s.Equal(int64(1), critical)

	activeFarms, err := s.store.CountFarms(s.ctx, domain.Bool(true))
	s.Require().NoError(err)
	s.Equal(int64(1), activeFarms)

	byType, err := s.store.CountFarmsByType(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.FarmTypeCount{{TypeName: "Dairy", Count: 2}}, byType)
}

func (s *GormCountStoreSuite) TestCountCreatedIn() {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	s.user("before", domain.RoleAdmin, true, nil, start.Add(-time.Second))
	s.user("first", domain.RoleAdmin, true, nil, start)
	s.user("now", domain.RoleAdmin, true, nil, now)
	s.user("later", domain.RoleAdmin, true, nil, now.Add(time.Hour))

	n, err := s.store.CountCreatedIn(s.ctx, domain.TrendUsers, domain.TimeRange{Start: start, End: now, InclusiveEnd: true})
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = s.store.CountCreatedIn(s.ctx, domain.TrendUsers, domain.TimeRange{Start: start, End: now})
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *GormCountStoreSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}
