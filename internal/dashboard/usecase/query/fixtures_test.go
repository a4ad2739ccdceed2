package query

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/internal/dashboard/repository"
)

var errStoreDown = errors.New("store unavailable")

func districtPtr(d domain.District) *domain.District {
	return &d
}

func provincePtr(p domain.Province) *domain.Province {
	return &p
}

func newUser(username string, role domain.Role, active bool, district *domain.District) domain.User {
	u := domain.User{Username: username, Role: role, Active: active, District: district}
	if district != nil {
		u.Province = provincePtr(district.Province())
	}
	return u
}

// seededStore returns a store with a small, fully known population:
//
//	users:        4 admins (3 active), 3 vets (2 active)
//	farm types:   3 (2 active), animal types: 2 (1 active), diseases: 3 (2 active, 1 notifiable)
//	farms:        3 (2 active), animals: 4, reports: 5 (3 confirmed)
func seededStore() *repository.InMemory {
	store := repository.NewInMemory()

	store.AddUsers(
		newUser("a1", domain.RoleAdmin, true, districtPtr(domain.DistrictColombo)),
		newUser("a2", domain.RoleAdmin, true, districtPtr(domain.DistrictGampaha)),
		newUser("a3", domain.RoleAdmin, true, nil),
		newUser("a4", domain.RoleAdmin, false, districtPtr(domain.DistrictColombo)),
		newUser("v1", domain.RoleVeterinaryOfficer, true, districtPtr(domain.DistrictColombo)),
		newUser("v2", domain.RoleVeterinaryOfficer, true, districtPtr(domain.DistrictKandy)),
		newUser("v3", domain.RoleVeterinaryOfficer, false, districtPtr(domain.DistrictGalle)),
	)

	dairy := domain.FarmType{ID: uuid.New(), TypeName: "Dairy", IsActive: true}
	poultry := domain.FarmType{ID: uuid.New(), TypeName: "Poultry", IsActive: true}
	piggery := domain.FarmType{ID: uuid.New(), TypeName: "Piggery", IsActive: false}
	store.AddFarmTypes(dairy, poultry, piggery)

	store.AddAnimalTypes(
		domain.AnimalType{ID: uuid.New(), TypeName: "Cattle", IsActive: true},
		domain.AnimalType{ID: uuid.New(), TypeName: "Goat", IsActive: false},
	)

	store.AddDiseases(
		domain.Disease{ID: uuid.New(), DiseaseName: "FMD", Severity: domain.SeverityCritical, IsNotifiable: true, IsActive: true},
		domain.Disease{ID: uuid.New(), DiseaseName: "Mastitis", Severity: domain.SeverityMedium, IsActive: true},
		domain.Disease{ID: uuid.New(), DiseaseName: "Ringworm", Severity: domain.SeverityLow, IsActive: false},
	)

	store.AddFarms(
		domain.Farm{ID: uuid.New(), FarmTypeID: poultry.ID, IsActive: true},
		domain.Farm{ID: uuid.New(), FarmTypeID: dairy.ID, IsActive: true},
		domain.Farm{ID: uuid.New(), FarmTypeID: dairy.ID, IsActive: false},
	)

	for i := 0; i < 4; i++ {
		store.AddAnimals(domain.Animal{ID: uuid.New()})
	}
	for i := 0; i < 5; i++ {
		store.AddDiseaseReports(domain.DiseaseReport{ID: uuid.New(), IsConfirmed: i < 3})
	}
	return store
}

// failingStore fails the operations named in failOn and delegates the rest
type failingStore struct {
	domain.CountStore
	failOn map[string]bool
}

func newFailingStore(next domain.CountStore, ops ...string) *failingStore {
	failOn := make(map[string]bool, len(ops))
	for _, op := range ops {
		failOn[op] = true
	}
	return &failingStore{CountStore: next, failOn: failOn}
}

func (s *failingStore) CountUsers(ctx context.Context, f domain.UserFilter) (int64, error) {
	if s.failOn["CountUsers"] {
		return 0, errStoreDown
	}
	return s.CountStore.CountUsers(ctx, f)
}

func (s *failingStore) CountAnimals(ctx context.Context) (int64, error) {
	if s.failOn["CountAnimals"] {
		return 0, errStoreDown
	}
	return s.CountStore.CountAnimals(ctx)
}

func (s *failingStore) CountConfiguration(ctx context.Context, kind domain.ConfigKind, active *bool) (int64, error) {
	if s.failOn["CountConfiguration"] {
		return 0, errStoreDown
	}
	return s.CountStore.CountConfiguration(ctx, kind, active)
}

func (s *failingStore) CountFarmsByType(ctx context.Context) ([]domain.FarmTypeCount, error) {
	if s.failOn["CountFarmsByType"] {
		return nil, errStoreDown
	}
	return s.CountStore.CountFarmsByType(ctx)
}

func (s *failingStore) CountActiveUsersByDistrict(ctx context.Context, p domain.Province, role *domain.Role) ([]domain.DistrictCount, error) {
	if s.failOn["CountActiveUsersByDistrict"] {
		return nil, errStoreDown
	}
	return s.CountStore.CountActiveUsersByDistrict(ctx, p, role)
}

func (s *failingStore) FindActiveUsersInDistrict(ctx context.Context, d domain.District, role *domain.Role) ([]domain.User, error) {
	if s.failOn["FindActiveUsersInDistrict"] {
		return nil, errStoreDown
	}
	return s.CountStore.FindActiveUsersInDistrict(ctx, d, role)
}

func (s *failingStore) CountCreatedIn(ctx context.Context, kind domain.TrendKind, r domain.TimeRange) (int64, error) {
	if s.failOn["CountCreatedIn"] {
		return 0, errStoreDown
	}
	return s.CountStore.CountCreatedIn(ctx, kind, r)
}

// rangeRecorder records every creation-time range it is asked to count
type rangeRecorder struct {
	domain.CountStore
	mu     sync.Mutex
	ranges []domain.TimeRange
}

func (s *rangeRecorder) CountCreatedIn(ctx context.Context, kind domain.TrendKind, r domain.TimeRange) (int64, error) {
	s.mu.Lock()
	s.ranges = append(s.ranges, r)
	s.mu.Unlock()
	return s.CountStore.CountCreatedIn(ctx, kind, r)
}

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}
