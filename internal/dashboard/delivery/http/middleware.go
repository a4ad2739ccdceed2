package http

import (
	"net/http"
	"strings"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/auth"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// CallerHandlerFunc is an HTTP handler that receives the authenticated caller
type CallerHandlerFunc func(w http.ResponseWriter, r *http.Request, caller domain.Caller)

// Authenticator resolves the caller of a request from its bearer token
type Authenticator struct {
	validator TokenValidator
}

// NewAuthenticator creates a new authenticator
func NewAuthenticator(validator TokenValidator) *Authenticator {
	return &Authenticator{validator: validator}
}

// AuthMiddleware validates the JWT token and hands the caller to next
func (a *Authenticator) AuthMiddleware(next CallerHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := a.validator.ValidateToken(parts[1])
		if err != nil {
			logger.Debug(r.Context()).Err(err).Msg("Rejected bearer token")
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		role := domain.Role(strings.ToUpper(claims.Role))
		if !role.Valid() {
			respondError(w, http.StatusForbidden, "Unknown role")
			return
		}

		next(w, r, domain.Caller{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     role,
		})
	}
}

// AdminMiddleware checks if the caller has the admin role
func (a *Authenticator) AdminMiddleware(next CallerHandlerFunc) http.HandlerFunc {
	return a.AuthMiddleware(func(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
		if !caller.IsAdmin() {
			respondError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r, caller)
	})
}
