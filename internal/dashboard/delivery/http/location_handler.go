package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// Location is one selectable province or district
type Location struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Province string `json:"province,omitempty"`
}

// LocationHandler serves the province and district reference lists
type LocationHandler struct{}

// NewLocationHandler creates a new location handler
func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

// GetProvinces handles GET /api/locations/provinces
func (h *LocationHandler) GetProvinces(w http.ResponseWriter, r *http.Request) {
	out := make([]Location, 0, len(domain.AllProvinces))
	for _, p := range domain.AllProvinces {
		out = append(out, Location{Value: string(p), Label: p.DisplayName()})
	}
	respondJSON(w, http.StatusOK, out)
}

// GetDistricts handles GET /api/locations/districts?provinceName=P
func (h *LocationHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("provinceName")
	province, err := domain.ParseProvince(raw)
	if err != nil {
		logger.Warn(r.Context()).Str("province", raw).Msg("Invalid province name")
		respondFailure(r.Context(), w, err)
		return
	}

	districts := province.Districts()
	out := make([]Location, 0, len(districts))
	for _, d := range districts {
		out = append(out, Location{Value: string(d), Label: d.DisplayName()})
	}
	respondJSON(w, http.StatusOK, out)
}

// GetAllDistricts handles GET /api/locations/districts/all
func (h *LocationHandler) GetAllDistricts(w http.ResponseWriter, r *http.Request) {
	out := make([]Location, 0, len(domain.AllDistricts))
	for _, d := range domain.AllDistricts {
		out = append(out, Location{
			Value:    string(d),
			Label:    d.DisplayName(),
			Province: string(d.Province()),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// RegisterRoutes registers the public location routes
func (h *LocationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/locations/provinces", h.GetProvinces).Methods("GET")
	router.HandleFunc("/api/locations/districts/all", h.GetAllDistricts).Methods("GET")
	router.HandleFunc("/api/locations/districts", h.GetDistricts).Methods("GET")
}
