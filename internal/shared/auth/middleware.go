package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/serbia-gov/ai-mock/internal/shared/config"
	"github.com/serbia-gov/ai-mock/internal/shared/errors"
	"github.com/serbia-gov/ai-mock/internal/shared/types"
)

type contextKey string

const (
	CallerContextKey contextKey = "caller"
)

// Caller represents the authenticated caller from JWT claims. Callers of
// this service are other platform components, not end users.
type Caller struct {
	ID        types.ID `json:"sub"`
	Service   string   `json:"service"`
	AgencyID  types.ID `json:"agency_id"`
	Roles     []string `json:"roles"`
	SessionID string   `json:"session_id"`
}

// Claims extends JWT claims with platform-specific data
type Claims struct {
	jwt.RegisteredClaims
	Service   string   `json:"service,omitempty"`
	AgencyID  string   `json:"agency_id,omitempty"`
	Roles     []string `json:"roles"`
	SessionID string   `json:"session_id"`
}

// Middleware creates JWT authentication middleware
func Middleware(cfg config.AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, errors.Unauthorized("missing authorization header"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				writeError(w, errors.Unauthorized("invalid authorization header format"))
				return
			}

			tokenString := parts[1]

			token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
				// For development, use symmetric key
				// In production, use Keycloak's public key
				return []byte(cfg.JWTSecret), nil
			})

			if err != nil {
				writeError(w, errors.Unauthorized("invalid token"))
				return
			}

			claims, ok := token.Claims.(*Claims)
			if !ok || !token.Valid {
				writeError(w, errors.Unauthorized("invalid token claims"))
				return
			}

			caller := &Caller{
				ID:        types.ID(claims.Subject),
				Service:   claims.Service,
				AgencyID:  types.ID(claims.AgencyID),
				Roles:     claims.Roles,
				SessionID: claims.SessionID,
			}

			ctx := context.WithValue(r.Context(), CallerContextKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCaller extracts the caller from request context
func GetCaller(ctx context.Context) *Caller {
	caller, ok := ctx.Value(CallerContextKey).(*Caller)
	if !ok {
		return nil
	}
	return caller
}

// RequireRoles creates middleware that requires specific roles
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := GetCaller(r.Context())
			if caller == nil {
				writeError(w, errors.Unauthorized("authentication required"))
				return
			}

			if !hasAnyRole(caller.Roles, roles) {
				writeError(w, errors.Forbidden("insufficient permissions"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HasRole checks if the caller has a specific role
func (c *Caller) HasRole(role string) bool {
	return hasAnyRole(c.Roles, []string{role})
}

func hasAnyRole(callerRoles, requiredRoles []string) bool {
	for _, required := range requiredRoles {
		for _, role := range callerRoles {
			if role == required {
				return true
			}
		}
	}
	return false
}

func writeError(w http.ResponseWriter, appErr *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	json.NewEncoder(w).Encode(map[string]any{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}
