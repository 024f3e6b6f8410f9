package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
)

const testSecret = "router-test-secret-32-characters!!"

func authedRequest(t *testing.T, tm security.TokenManager, role domain.EmployeeRole) *http.Request {
	t.Helper()
	token, err := tm.GenerateAccessToken(42, "asmith", role)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthenticate(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	mw := NewAuthMiddleware(tm)

	var gotID int64
	var gotRole domain.EmployeeRole
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = EmployeeIDFromContext(r.Context())
		gotRole, _ = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("ValidToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, authedRequest(t, tm, domain.RoleManager))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), gotID)
		assert.Equal(t, domain.RoleManager, gotRole)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		expired := security.NewTokenManager(testSecret, -time.Minute)
		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, authedRequest(t, expired, domain.RoleEmployee))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	mw := NewAuthMiddleware(tm)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	adminOnly := mw.Authenticate(RequireRole(domain.RoleAdmin)(next))

	t.Run("AllowedRole", func(t *testing.T) {
		rec := httptest.NewRecorder()
		adminOnly.ServeHTTP(rec, authedRequest(t, tm, domain.RoleAdmin))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ForbiddenRole", func(t *testing.T) {
		rec := httptest.NewRecorder()
		adminOnly.ServeHTTP(rec, authedRequest(t, tm, domain.RoleEmployee))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NoAuthContext", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireRole(domain.RoleAdmin)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
