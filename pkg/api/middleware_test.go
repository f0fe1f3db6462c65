package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/hireflow/scout/pkg/config"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestAuthMiddleware(t *testing.T) {
	f := newAuthedFixture(t, &config.AuthConfig{
		Enabled: true,
		Tokens: map[string]config.TokenGrant{
			"reader-token": {Principal: "reader", Scopes: []string{"jobs:read"}},
			"ops-token":    {Principal: "ops", Scopes: []string{"*"}},
			"admin-token":  {Principal: "admin", Scopes: []string{"*"}, Admin: true},
		},
	})

	t.Run("no token is 401", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/jobs", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown token is 401", func(t *testing.T) {
		rec := f.doAuthed(t, http.MethodGet, "/api/v1/jobs", nil, "bogus")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("granted scope passes", func(t *testing.T) {
		rec := f.doAuthed(t, http.MethodGet, "/api/v1/jobs", nil, "reader-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing scope is 403", func(t *testing.T) {
		rec := f.doAuthed(t, http.MethodPost, "/api/v1/jobs", map[string]string{"title": "x"}, "reader-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wildcard covers every scope but not admin routes", func(t *testing.T) {
		rec := f.doAuthed(t, http.MethodGet, "/api/v1/jobs", nil, "ops-token")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = f.doAuthed(t, http.MethodGet, "/api/v1/store/status", nil, "ops-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin grant reaches store administration", func(t *testing.T) {
		rec := f.doAuthed(t, http.MethodGet, "/api/v1/store/status", nil, "admin-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health stays unauthenticated", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/healthz", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthDisabledAllowsAnonymous(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/jobs", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/store/status", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
