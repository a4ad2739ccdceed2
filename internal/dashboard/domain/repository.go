package domain

import "context"

// ConfigKind selects one of the three configuration collections
type ConfigKind int

const (
	ConfigFarmTypes ConfigKind = iota
	ConfigAnimalTypes
	ConfigDiseases
)

// AllConfigKinds lists every configuration collection
var AllConfigKinds = []ConfigKind{ConfigFarmTypes, ConfigAnimalTypes, ConfigDiseases}

// String returns the collection name
func (k ConfigKind) String() string {
	switch k {
	case ConfigFarmTypes:
		return "farm_types"
	case ConfigAnimalTypes:
		return "animal_types"
	case ConfigDiseases:
		return "diseases"
	}
	return "unknown"
}

// UserFilter narrows a user count. Nil fields do not filter.
type UserFilter struct {
	Active   *bool
	Role     *Role
	District *District
}

// Bool returns a pointer to v, for building filters
func Bool(v bool) *bool {
	return &v
}

// CountStore is the read-only query surface the dashboard aggregates over
type CountStore interface {
	// Users
	CountUsers(ctx context.Context, filter UserFilter) (int64, error)
	// CountActiveUsersByProvince groups active users with a province set.
	// Provinces without matching users are absent.
	CountActiveUsersByProvince(ctx context.Context, role *Role) ([]ProvinceCount, error)
	// CountActiveUsersByDistrict groups active users of one province that have a district set
	CountActiveUsersByDistrict(ctx context.Context, province Province, role *Role) ([]DistrictCount, error)
	FindActiveUsersInDistrict(ctx context.Context, district District, role *Role) ([]User, error)
	FindUsersInProvince(ctx context.Context, province Province, role *Role) ([]User, error)

	// Configuration collections. A nil active counts every row.
	CountConfiguration(ctx context.Context, kind ConfigKind, active *bool) (int64, error)
	CountNotifiableDiseases(ctx context.Context) (int64, error)
	CountDiseasesBySeverity(ctx context.Context, severity Severity) (int64, error)

	// Operational collections
	CountFarms(ctx context.Context, active *bool) (int64, error)
	CountFarmsByType(ctx context.Context) ([]FarmTypeCount, error)
	CountAnimals(ctx context.Context) (int64, error)
	CountDiseaseReports(ctx context.Context, confirmed *bool) (int64, error)

	// CountCreatedIn counts records of kind whose creation time falls in r
	CountCreatedIn(ctx context.Context, kind TrendKind, r TimeRange) (int64, error)
}
