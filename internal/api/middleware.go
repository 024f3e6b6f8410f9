package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/security"
)

type contextKey string

const (
	employeeIDKey contextKey = "employee_id"
	roleKey       contextKey = "role"
)

type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the bearer token and puts the acting employee's id
// and role on the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid authorization format"})
			return
		}

		claims, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), employeeIDKey, claims.EmployeeID)
		ctx = context.WithValue(ctx, roleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route on the roles present in the token. It must run
// inside Authenticate.
func RequireRole(allowed ...domain.EmployeeRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
				return
			}
			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient permissions"})
		})
	}
}

func EmployeeIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(employeeIDKey).(int64)
	return id, ok
}

func RoleFromContext(ctx context.Context) (domain.EmployeeRole, bool) {
	role, ok := ctx.Value(roleKey).(domain.EmployeeRole)
	return role, ok
}

// RequestLogging logs method, path, status and duration for every request.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
