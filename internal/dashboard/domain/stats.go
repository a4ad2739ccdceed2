package domain

// DashboardStats is a point-in-time snapshot across every collection
type DashboardStats struct {
	TotalUsers             int64 `json:"totalUsers"`
	ActiveUsers            int64 `json:"activeUsers"`
	InactiveUsers          int64 `json:"inactiveUsers"`
	AdminUsers             int64 `json:"adminUsers"`
	VeterinaryOfficerUsers int64 `json:"veterinaryOfficerUsers"`

	TotalFarmTypes     int64 `json:"totalFarmTypes"`
	ActiveFarmTypes    int64 `json:"activeFarmTypes"`
	TotalAnimalTypes   int64 `json:"totalAnimalTypes"`
	ActiveAnimalTypes  int64 `json:"activeAnimalTypes"`
	TotalDiseases      int64 `json:"totalDiseases"`
	ActiveDiseases     int64 `json:"activeDiseases"`
	NotifiableDiseases int64 `json:"notifiableDiseases"`

	TotalFarms              int64 `json:"totalFarms"`
	ActiveFarms             int64 `json:"activeFarms"`
	TotalAnimals            int64 `json:"totalAnimals"`
	TotalDiseaseReports     int64 `json:"totalDiseaseReports"`
	ConfirmedDiseaseReports int64 `json:"confirmedDiseaseReports"`
	PendingDiseaseReports   int64 `json:"pendingDiseaseReports"`
}

// Summary count keys returned by the lightweight polling endpoint
const (
	SummaryAdminCount          = "adminCount"
	SummaryVetCount            = "vetCount"
	SummaryTotalFarms          = "totalFarms"
	SummaryTotalAnimals        = "totalAnimals"
	SummaryTotalDiseaseReports = "totalDiseaseReports"
	SummaryActiveFarmTypes     = "activeFarmTypes"
	SummaryActiveAnimalTypes   = "activeAnimalTypes"
	SummaryActiveDiseases      = "activeDiseases"
	SummaryNotifiableDiseases  = "notifiableDiseases"
)
