package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxxnxr13/web-inmobiliaria/mailer"
	"github.com/kxxnxr13/web-inmobiliaria/models"
	"github.com/kxxnxr13/web-inmobiliaria/query"
	"github.com/kxxnxr13/web-inmobiliaria/storage"
	"github.com/kxxnxr13/web-inmobiliaria/store"
)

func newPropertyController(t *testing.T) *PropertyController {
	t.Helper()
	return NewPropertyController(store.NewProperties(storage.NewMemory()))
}

func getContext(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListPropertiesAppliesFilters(t *testing.T) {
	e := echo.New()
	pc := newPropertyController(t)

	c, rec := getContext(e, "/api/properties?type=rental&bedrooms=3")
	require.NoError(t, pc.ListProperties(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var page query.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.NotEmpty(t, page.Properties)
	for _, p := range page.Properties {
		assert.Equal(t, models.ListingRental, p.Type)
		assert.Equal(t, 3, p.Bedrooms)
		assert.Equal(t, models.StatusAvailable, p.Status)
	}
}

func TestListPropertiesPaginates(t *testing.T) {
	e := echo.New()
	pc := newPropertyController(t)

	c, rec := getContext(e, "/api/properties?page=2")
	require.NoError(t, pc.ListProperties(c))

	var page query.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Properties, 6)
}

func TestListPropertiesSortsNewestFirst(t *testing.T) {
	e := echo.New()
	pc := newPropertyController(t)

	c, rec := getContext(e, "/api/properties")
	require.NoError(t, pc.ListProperties(c))

	var page query.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	for i := 1; i < len(page.Properties); i++ {
		assert.LessOrEqual(t, page.Properties[i].CreatedAt, page.Properties[i-1].CreatedAt)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	e := echo.New()
	pc := newPropertyController(t)

	c, rec := getContext(e, "/api/properties/nope")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	require.NoError(t, pc.GetProperty(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusEnforcesOwnership(t *testing.T) {
	e := echo.New()
	pc := newPropertyController(t)

	// Property "2" in the seed belongs to admin "2".
	c, rec := jsonContext(e, http.MethodPatch, "/api/admin/properties/2/status", `{"status":"sold"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	c.Set("user_id", "9")
	c.Set("user_role", models.RoleAdmin)
	require.NoError(t, pc.UpdateStatus(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = jsonContext(e, http.MethodPatch, "/api/admin/properties/2/status", `{"status":"sold"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	c.Set("user_id", "1")
	c.Set("user_role", models.RoleSuperAdmin)
	require.NoError(t, pc.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.StatusSold, updated.Status)
}

func TestDeletePropertyIsIdempotentAtBoundary(t *testing.T) {
	e := echo.New()
	pc := newPropertyController(t)

	for i := 0; i < 2; i++ {
		c, rec := getContext(e, "/api/admin/properties/1")
		c.SetParamNames("id")
		c.SetParamValues("1")
		c.Set("user_id", "1")
		c.Set("user_role", models.RoleSuperAdmin)
		require.NoError(t, pc.DeleteProperty(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func newAuthController(t *testing.T) *AuthController {
	t.Helper()
	admins, err := store.NewAdmins(storage.NewMemory(), store.SuperAdmin{
		ID:       "1",
		Email:    "superadmin@inmobiliaria.com",
		Name:     "Super Administrator",
		Password: "admin123",
	})
	require.NoError(t, err)
	return NewAuthController(admins, "test-secret", time.Hour)
}

func TestLoginIssuesToken(t *testing.T) {
	e := echo.New()
	ac := newAuthController(t)

	c, rec := jsonContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"superadmin@inmobiliaria.com","password":"admin123"}`)
	require.NoError(t, ac.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleSuperAdmin, resp.User.Role)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	e := echo.New()
	ac := newAuthController(t)

	bodies := []string{
		`{"email":"superadmin@inmobiliaria.com","password":"wrong"}`,
		`{"email":"unknown@inmobiliaria.com","password":"admin123"}`,
	}
	for _, body := range bodies {
		c, rec := jsonContext(e, http.MethodPost, "/api/auth/login", body)
		require.NoError(t, ac.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())
	}
}

func TestCreateAdminValidatesPayload(t *testing.T) {
	e := echo.New()
	ac := newAuthController(t)

	c, rec := jsonContext(e, http.MethodPost, "/api/admins",
		`{"email":"new@inmobiliaria.com","password":"short","name":"New"}`)
	require.NoError(t, ac.CreateAdmin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = jsonContext(e, http.MethodPost, "/api/admins",
		`{"email":"new@inmobiliaria.com","password":"longenough","name":"New","isActive":true}`)
	require.NoError(t, ac.CreateAdmin(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var admin models.Admin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &admin))
	assert.Empty(t, admin.Password, "hash must not leak in responses")
}

type stubRelay struct {
	id  string
	err error
}

func (s stubRelay) Send(ctx context.Context, msg models.ContactRequest) (string, error) {
	return s.id, s.err
}

func TestSubmitContactSuccess(t *testing.T) {
	e := echo.New()
	cc := NewContactController(stubRelay{id: "msg-9"})

	c, rec := jsonContext(e, http.MethodPost, "/api/contact",
		`{"name":"Maria","email":"maria@example.com","message":"Hello"}`)
	require.NoError(t, cc.SubmitContact(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ContactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "msg-9", resp.MessageID)
}

func TestSubmitContactValidation(t *testing.T) {
	e := echo.New()
	cc := NewContactController(stubRelay{})

	c, rec := jsonContext(e, http.MethodPost, "/api/contact", `{"name":"Maria"}`)
	require.NoError(t, cc.SubmitContact(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContactErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"relay unconfigured", mailer.ErrRelayUnconfigured, http.StatusBadGateway},
		{"rate limited", mailer.ErrRateLimited, http.StatusTooManyRequests},
		{"connectivity", mailer.ErrConnectivity, http.StatusServiceUnavailable},
		{"generic", mailer.ErrSubmission, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			cc := NewContactController(stubRelay{err: tc.err})

			c, rec := jsonContext(e, http.MethodPost, "/api/contact",
				`{"name":"Maria","email":"maria@example.com","message":"Hello"}`)
			require.NoError(t, cc.SubmitContact(c))
			assert.Equal(t, tc.status, rec.Code)

			var resp models.ContactResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestListManagedScopesByOwnership(t *testing.T) {
	e := echo.New()
	pc := newPropertyController(t)

	c, rec := getContext(e, "/api/admin/properties")
	c.Set("user_id", "2")
	c.Set("user_role", models.RoleAdmin)
	require.NoError(t, pc.ListManaged(c))

	var managed []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &managed))
	require.NotEmpty(t, managed)
	for _, p := range managed {
		assert.True(t, p.Owner.ManageableBy("2"))
	}

	c, rec = getContext(e, "/api/admin/properties")
	c.Set("user_id", "1")
	c.Set("user_role", models.RoleSuperAdmin)
	require.NoError(t, pc.ListManaged(c))

	var all []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 12)
}

func TestListManagedWithoutIdentity(t *testing.T) {
	e := echo.New()
	pc := newPropertyController(t)

	// No user_id in context; only shared properties are visible.
	c, rec := getContext(e, "/api/admin/properties")
	require.NoError(t, pc.ListManaged(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var managed []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &managed))
	require.NotEmpty(t, managed)
	for _, p := range managed {
		assert.True(t, p.Owner.IsShared())
	}
}
