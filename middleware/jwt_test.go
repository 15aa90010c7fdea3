package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxxnxr13/web-inmobiliaria/models"
	"github.com/kxxnxr13/web-inmobiliaria/utils"
)

const testSecret = "test-secret"

func run(mw echo.MiddlewareFunc, c echo.Context, next echo.HandlerFunc) error {
	return mw(next)(c)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/properties", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := run(JWTMiddleware(testSecret), c, func(echo.Context) error {
		t.Fatal("next should not run without a token")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareRejectsBadFormat(t *testing.T) {
	e := echo.New()
	for _, header := range []string{"token-without-scheme", "Basic abc123"} {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/properties", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := run(JWTMiddleware(testSecret), c, func(echo.Context) error {
			t.Fatalf("next should not run for header %q", header)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestJWTMiddlewareRejectsForgedToken(t *testing.T) {
	token, err := utils.GenerateJWT("other-secret", "1", "a@b.com", models.RoleAdmin, "A", time.Hour)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = run(JWTMiddleware(testSecret), c, func(echo.Context) error {
		t.Fatal("next should not run with a forged token")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewarePopulatesContext(t *testing.T) {
	token, err := utils.GenerateJWT(testSecret, "2", "admin@inmobiliaria.com", models.RoleAdmin, "Admin Two", time.Hour)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err = run(JWTMiddleware(testSecret), c, func(c echo.Context) error {
		called = true
		assert.Equal(t, "2", c.Get("user_id"))
		assert.Equal(t, "admin@inmobiliaria.com", c.Get("user_email"))
		assert.Equal(t, models.RoleAdmin, c.Get("user_role"))
		assert.Equal(t, "Admin Two", c.Get("user_name"))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestSuperAdminOnly(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/admins", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_role", models.RoleAdmin)

	err := run(SuperAdminOnly(), c, func(echo.Context) error {
		t.Fatal("regular admins must not pass")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admins", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("user_role", models.RoleSuperAdmin)

	called := false
	err = run(SuperAdminOnly(), c, func(echo.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
