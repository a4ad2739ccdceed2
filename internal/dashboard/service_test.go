package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/internal/dashboard/repository"
)

var errStoreDown = errors.New("store unavailable")

type brokenFarmTypes struct {
	domain.CountStore
}

func (brokenFarmTypes) CountFarmsByType(context.Context) ([]domain.FarmTypeCount, error) {
	return nil, errStoreDown
}

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *repository.InMemory
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = repository.NewInMemory()

	now := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	colombo := domain.DistrictColombo
	western := domain.ProvinceWestern
	s.store.AddUsers(
		domain.User{Username: "admin", Role: domain.RoleAdmin, Active: true, CreatedAt: now.AddDate(0, -1, 0)},
		domain.User{Username: "vet", Role: domain.RoleVeterinaryOfficer, Active: true,
			Province: &western, District: &colombo, CreatedAt: now},
	)
	dairy := domain.FarmType{ID: uuid.New(), TypeName: "Dairy", IsActive: true}
	s.store.AddFarmTypes(dairy)
	s.store.AddFarms(domain.Farm{ID: uuid.New(), FarmTypeID: dairy.ID, IsActive: true, CreatedAt: now})

	s.service = NewServiceFromStore(s.store, domain.FixedClock(now))
}

func (s *ServiceSuite) TestAllTrends() {
	trends, err := s.service.AllTrends(s.ctx, 2)
	s.Require().NoError(err)

	s.Len(trends, 3)
	s.Equal([]string{"May 2024", "Jun 2024"}, trends[TrendKeyUsers].Labels)
	s.Equal([]int64{1, 1}, trends[TrendKeyUsers].Values)
	s.Equal([]int64{0, 1}, trends[TrendKeyFarms].Values)
	s.Equal([]int64{0, 0}, trends[TrendKeyDiseaseReports].Values)
}

func (s *ServiceSuite) TestAllTrendsRejectsBadWindow() {
	_, err := s.service.AllTrends(s.ctx, 0)

	var verr *domain.ValidationError
	s.ErrorAs(err, &verr)
}

func (s *ServiceSuite) TestAllPieCharts() {
	charts, err := s.service.AllPieCharts(s.ctx)
	s.Require().NoError(err)

	s.ElementsMatch(
		[]string{ChartKeyUserRoles, ChartKeyUserStatus, ChartKeyConfigStatus, ChartKeyFarmTypes, ChartKeyDiseaseSeverity},
		keys(charts),
	)
	s.Equal([]int64{1, 1}, charts[ChartKeyUserRoles].Values)
	s.Equal([]string{"Dairy"}, charts[ChartKeyFarmTypes].Labels)
	for _, series := range charts {
		s.Equal(domain.SeriesCategory, series.Kind)
	}
}

func (s *ServiceSuite) TestAllPieChartsFailsAsAWhole() {
	service := NewServiceFromStore(brokenFarmTypes{s.store}, domain.SystemClock{})

	charts, err := service.AllPieCharts(s.ctx)
	s.ErrorIs(err, errStoreDown)
	s.Nil(charts)
}

func (s *ServiceSuite) TestDelegation() {
	stats, err := s.service.Statistics(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), stats.TotalUsers)

	summary, err := s.service.SummaryCounts(s.ctx)
	s.Require().NoError(err)
	s.Len(summary, 9)
	s.Equal(int64(1), summary[domain.SummaryTotalFarms])

	provinces, err := s.service.ProvinceDistribution(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(provinces, 1)
	s.Equal(domain.ProvinceWestern, provinces[0].Province)

	districts, err := s.service.DistrictDistribution(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(districts, 25)

	colombo := domain.DistrictColombo
	users, err := s.service.UsersInDistrict(s.ctx, &colombo, nil)
	s.Require().NoError(err)
	s.Len(users, 1)

	users, err = s.service.UsersInProvince(s.ctx, domain.ProvinceWestern, nil)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func keys(m map[string]domain.ChartSeries) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
