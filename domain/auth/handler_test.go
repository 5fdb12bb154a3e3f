package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solutions-admin/domain/admin"
	"solutions-admin/pkg/apperrors"
	"solutions-admin/pkg/testutil"
	"solutions-admin/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func seedAdmin(t *testing.T, email, password string) *admin.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	a, err := admin.Create("Ana", email, hash, admin.RoleAdmin)
	require.NoError(t, err)
	return a
}

func TestNeedsSetupFlow(t *testing.T) {
	testutil.SetupDB(t)
	viper.Set("JWT_SECRET", "test-secret")
	t.Cleanup(func() { viper.Set("JWT_SECRET", "") })

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/needs_setup", "")
	require.NoError(t, NeedsSetupHandler(c))

	var resp NeedsSetupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.NeedsSetup)

	c, rec = newTestContext(t, http.MethodPost, "/api/auth/setup",
		`{"name":"Ana","email":"ana@escritorio.com","password":"secret123"}`)
	require.NoError(t, SetupHandler(c))

	var session SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "ana@escritorio.com", session.User.Email)
	assert.Equal(t, admin.RoleAdmin, session.User.Role)

	c, rec = newTestContext(t, http.MethodGet, "/api/auth/needs_setup", "")
	require.NoError(t, NeedsSetupHandler(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.NeedsSetup)
}

func TestSetupForbiddenOnceAccountExists(t *testing.T) {
	testutil.SetupDB(t)
	viper.Set("JWT_SECRET", "test-secret")
	t.Cleanup(func() { viper.Set("JWT_SECRET", "") })

	seedAdmin(t, "ana@escritorio.com", "secret123")

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/setup",
		`{"name":"Intruso","email":"intruso@example.com","password":"secret123"}`)
	err := SetupHandler(c)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
	assert.Equal(t, apperrors.ErrCodeSetupDone, appErr.Code)
}

func TestSetupValidation(t *testing.T) {
	testutil.SetupDB(t)

	// Password shorter than six characters.
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/setup",
		`{"name":"Ana","email":"ana@escritorio.com","password":"abc"}`)
	err := SetupHandler(c)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestLoginSuccess(t *testing.T) {
	testutil.SetupDB(t)
	viper.Set("JWT_SECRET", "test-secret")
	t.Cleanup(func() { viper.Set("JWT_SECRET", "") })

	a := seedAdmin(t, "ana@escritorio.com", "secret123")

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"ana@escritorio.com","password":"secret123"}`)
	require.NoError(t, LoginHandler(c))

	var session SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, a.ID, session.User.ID)

	id, err := utils.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)

	// Login records the sign-in time.
	got, err := admin.GetByID(a.ID)
	require.NoError(t, err)
	assert.True(t, got.LastSignedIn.Valid)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	db := testutil.SetupDB(t)
	viper.Set("JWT_SECRET", "test-secret")
	t.Cleanup(func() { viper.Set("JWT_SECRET", "") })

	a := seedAdmin(t, "ana@escritorio.com", "secret123")

	cases := []struct {
		name string
		body string
		prep func()
	}{
		{"wrong password", `{"email":"ana@escritorio.com","password":"wrong-pass"}`, nil},
		{"unknown email", `{"email":"ghost@example.com","password":"secret123"}`, nil},
		{"inactive account", `{"email":"ana@escritorio.com","password":"secret123"}`, func() {
			_, err := db.Exec(`UPDATE admin_users SET is_active = 0 WHERE id = $1`, a.ID)
			require.NoError(t, err)
		}},
	}

	var messages []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.prep != nil {
				tc.prep()
			}
			c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", tc.body)
			err := LoginHandler(c)
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
			assert.Equal(t, apperrors.ErrCodeInvalidCredentials, appErr.Code)
			messages = append(messages, appErr.Message)
		})
	}

	// Every failure mode reads exactly the same to the caller.
	for _, msg := range messages {
		assert.Equal(t, messages[0], msg)
	}
}
