package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
)

// InMemory is a domain.CountStore over in-process slices, used by tests.
// Soft-deleted users are skipped the same way gorm scopes them out.
type InMemory struct {
	mu          sync.RWMutex
	users       []domain.User
	farmTypes   []domain.FarmType
	animalTypes []domain.AnimalType
	diseases    []domain.Disease
	farms       []domain.Farm
	animals     []domain.Animal
	reports     []domain.DiseaseReport
}

// NewInMemory creates an empty store
func NewInMemory() *InMemory {
	return &InMemory{}
}

// AddUsers seeds users
func (s *InMemory) AddUsers(users ...domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		if u.ID == 0 {
			u.ID = uint(len(s.users) + 1)
		}
		s.users = append(s.users, u)
	}
}

// AddFarmTypes seeds farm types
func (s *InMemory) AddFarmTypes(types ...domain.FarmType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farmTypes = append(s.farmTypes, types...)
}

// AddAnimalTypes seeds animal types
func (s *InMemory) AddAnimalTypes(types ...domain.AnimalType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animalTypes = append(s.animalTypes, types...)
}

// AddDiseases seeds disease definitions
func (s *InMemory) AddDiseases(diseases ...domain.Disease) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diseases = append(s.diseases, diseases...)
}

// AddFarms seeds farms. FarmTypeID must reference a seeded farm type to show up in CountFarmsByType.
func (s *InMemory) AddFarms(farms ...domain.Farm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farms = append(s.farms, farms...)
}

// AddAnimals seeds animals
func (s *InMemory) AddAnimals(animals ...domain.Animal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals = append(s.animals, animals...)
}

// AddDiseaseReports seeds disease reports
func (s *InMemory) AddDiseaseReports(reports ...domain.DiseaseReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, reports...)
}

// liveUsers returns users without a deletion timestamp. Callers hold s.mu.
func (s *InMemory) liveUsers() []domain.User {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if !u.DeletedAt.Valid {
			out = append(out, u)
		}
	}
	return out
}

func roleMatches(u domain.User, role *domain.Role) bool {
	return role == nil || u.Role == *role
}

func boolMatches(v bool, want *bool) bool {
	return want == nil || v == *want
}

// CountUsers counts users matching filter
func (s *InMemory) CountUsers(_ context.Context, filter domain.UserFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, u := range s.liveUsers() {
		if !roleMatches(u, filter.Role) || !boolMatches(u.Active, filter.Active) {
			continue
		}
		if filter.District != nil && (u.District == nil || *u.District != *filter.District) {
			continue
		}
		count++
	}
	return count, nil
}

// CountActiveUsersByProvince groups active users by province
func (s *InMemory) CountActiveUsersByProvince(_ context.Context, role *domain.Role) ([]domain.ProvinceCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.Province]int64)
	for _, u := range s.liveUsers() {
		if u.Active && u.Province != nil && roleMatches(u, role) {
			counts[*u.Province]++
		}
	}

	// Database GROUP BY gives no ordering guarantee; neither does this.
	out := make([]domain.ProvinceCount, 0, len(counts))
	for p, c := range counts {
		out = append(out, domain.ProvinceCount{Province: p, Count: c})
	}
	return out, nil
}

// CountActiveUsersByDistrict groups active users of one province by district
func (s *InMemory) CountActiveUsersByDistrict(_ context.Context, province domain.Province, role *domain.Role) ([]domain.DistrictCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.District]int64)
	for _, u := range s.liveUsers() {
		if !u.Active || u.Province == nil || *u.Province != province || u.District == nil {
			continue
		}
		if roleMatches(u, role) {
			counts[*u.District]++
		}
	}

	out := make([]domain.DistrictCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, domain.DistrictCount{District: d, Count: c})
	}
	return out, nil
}

func sortByUsername(users []domain.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
}

// FindActiveUsersInDistrict lists active users of a district
func (s *InMemory) FindActiveUsersInDistrict(_ context.Context, district domain.District, role *domain.Role) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.User
	for _, u := range s.liveUsers() {
		if u.Active && u.District != nil && *u.District == district && roleMatches(u, role) {
			out = append(out, u)
		}
	}
	sortByUsername(out)
	return out, nil
}

// FindUsersInProvince lists users of a province regardless of status
func (s *InMemory) FindUsersInProvince(_ context.Context, province domain.Province, role *domain.Role) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.User
	for _, u := range s.liveUsers() {
		if u.Province != nil && *u.Province == province && roleMatches(u, role) {
			out = append(out, u)
		}
	}
	sortByUsername(out)
	return out, nil
}

// CountConfiguration counts one configuration collection, optionally by status
func (s *InMemory) CountConfiguration(_ context.Context, kind domain.ConfigKind, active *bool) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	switch kind {
	case domain.ConfigFarmTypes:
		for _, t := range s.farmTypes {
			if boolMatches(t.IsActive, active) {
				count++
			}
		}
	case domain.ConfigAnimalTypes:
		for _, t := range s.animalTypes {
			if boolMatches(t.IsActive, active) {
				count++
			}
		}
	case domain.ConfigDiseases:
		for _, d := range s.diseases {
			if boolMatches(d.IsActive, active) {
				count++
			}
		}
	}
	return count, nil
}

// CountNotifiableDiseases counts diseases flagged for mandatory reporting
func (s *InMemory) CountNotifiableDiseases(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, d := range s.diseases {
		if d.IsNotifiable {
			count++
		}
	}
	return count, nil
}

// CountDiseasesBySeverity counts disease definitions at one severity
func (s *InMemory) CountDiseasesBySeverity(_ context.Context, severity domain.Severity) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, d := range s.diseases {
		if d.Severity == severity {
			count++
		}
	}
	return count, nil
}

// CountFarms counts farms, optionally by status
func (s *InMemory) CountFarms(_ context.Context, active *bool) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, f := range s.farms {
		if boolMatches(f.IsActive, active) {
			count++
		}
	}
	return count, nil
}

// CountFarmsByType groups farms by farm type name, ordered by name
func (s *InMemory) CountFarmsByType(_ context.Context) ([]domain.FarmTypeCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(map[string]string, len(s.farmTypes))
	for _, t := range s.farmTypes {
		names[t.ID.String()] = t.TypeName
	}
	counts := make(map[string]int64)
	for _, f := range s.farms {
		if name, ok := names[f.FarmTypeID.String()]; ok {
			counts[name]++
		}
	}

	out := make([]domain.FarmTypeCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, domain.FarmTypeCount{TypeName: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TypeName < out[j].TypeName })
	return out, nil
}

// CountAnimals returns the total number of animals
func (s *InMemory) CountAnimals(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.animals)), nil
}

// CountDiseaseReports counts disease reports, optionally by confirmation
func (s *InMemory) CountDiseaseReports(_ context.Context, confirmed *bool) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, r := range s.reports {
		if boolMatches(r.IsConfirmed, confirmed) {
			count++
		}
	}
	return count, nil
}

// CountCreatedIn counts records of kind created inside rng
func (s *InMemory) CountCreatedIn(_ context.Context, kind domain.TrendKind, rng domain.TimeRange) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	switch kind {
	case domain.TrendUsers:
		for _, u := range s.liveUsers() {
			if rng.Contains(u.CreatedAt) {
				count++
			}
		}
	case domain.TrendFarms:
		for _, f := range s.farms {
			if rng.Contains(f.CreatedAt) {
				count++
			}
		}
	case domain.TrendDiseaseReports:
		for _, r := range s.reports {
			if rng.Contains(r.CreatedAt) {
				count++
			}
		}
	}
	return count, nil
}
