package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondFailure maps err to a status code. Validation errors name the offending
// field; anything else is logged and reported as a generic server error.
func respondFailure(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": verr.Error(),
			"field": verr.Field,
			"value": verr.Value,
		})
		return
	}

	logger.Error(ctx).Err(err).Msg("Dashboard request failed")
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
