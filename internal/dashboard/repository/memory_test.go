package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
)

type InMemorySuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemory
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()

	kandy, colombo := domain.DistrictKandy, domain.DistrictColombo
	central, western := domain.ProvinceCentral, domain.ProvinceWestern
	s.store.AddUsers(
		domain.User{Username: "zed", Role: domain.RoleAdmin, Active: true, Province: &western, District: &colombo},
		domain.User{Username: "amy", Role: domain.RoleVeterinaryOfficer, Active: true, Province: &western, District: &colombo},
		domain.User{Username: "kim", Role: domain.RoleVeterinaryOfficer, Active: false, Province: &central, District: &kandy},
	)
}

func (s *InMemorySuite) TestAssignsIDs() {
	users, err := s.store.FindUsersInProvince(s.ctx, domain.ProvinceWestern, nil)
	s.Require().NoError(err)
	for _, u := range users {
		s.NotZero(u.ID)
	}
}

func (s *InMemorySuite) TestUserFilters() {
	vet := domain.RoleVeterinaryOfficer
	colombo := domain.DistrictColombo

	n, err := s.store.CountUsers(s.ctx, domain.UserFilter{Role: &vet})
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = s.store.CountUsers(s.ctx, domain.UserFilter{Role: &vet, Active: domain.Bool(true), District: &colombo})
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *InMemorySuite) TestGroupedCountsSkipInactive() {
	provinces, err := s.store.CountActiveUsersByProvince(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal([]domain.ProvinceCount{{Province: domain.ProvinceWestern, Count: 2}}, provinces)

	districts, err := s.store.CountActiveUsersByDistrict(s.ctx, domain.ProvinceCentral, nil)
	s.Require().NoError(err)
	s.Empty(districts)
}

func (s *InMemorySuite) TestFindSortsByUsername() {
	users, err := s.store.FindActiveUsersInDistrict(s.ctx, domain.DistrictColombo, nil)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("amy", users[0].Username)
	s.Equal("zed", users[1].Username)
}

func (s *InMemorySuite) TestSoftDeletedUsersAreSkipped() {
	western, colombo := domain.ProvinceWestern, domain.DistrictColombo
	s.store.AddUsers(domain.User{
		Username:  "gone",
		Role:      domain.RoleAdmin,
		Active:    true,
		Province:  &western,
		District:  &colombo,
		CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true},
	})

	total, err := s.store.CountUsers(s.ctx, domain.UserFilter{})
	s.Require().NoError(err)
	s.Equal(int64(3), total)

	provinces, err := s.store.CountActiveUsersByProvince(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal([]domain.ProvinceCount{{Province: western, Count: 2}}, provinces)

	users, err := s.store.FindUsersInProvince(s.ctx, western, nil)
	s.Require().NoError(err)
	s.Len(users, 2)

	inDistrict, err := s.store.FindActiveUsersInDistrict(s.ctx, colombo, nil)
	s.Require().NoError(err)
	s.Len(inDistrict, 2)

	created, err := s.store.CountCreatedIn(s.ctx, domain.TrendUsers, domain.TimeRange{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Zero(created)
}

func (s *InMemorySuite) TestCountCreatedInHonoursRangeEnd() {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	s.store.AddFarms(
		domain.Farm{ID: uuid.New(), CreatedAt: start},
		domain.Farm{ID: uuid.New(), CreatedAt: end},
	)

	n, err := s.store.CountCreatedIn(s.ctx, domain.TrendFarms, domain.TimeRange{Start: start, End: end})
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = s.store.CountCreatedIn(s.ctx, domain.TrendFarms, domain.TimeRange{Start: start, End: end, InclusiveEnd: true})
	s.Require().NoError(err)
	s.Equal(int64(2), n)
}
