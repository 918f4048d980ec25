package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsharma-dev/institute_admin/internal/models"
	"github.com/nsharma-dev/institute_admin/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

func accessToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()

	u := &models.User{ID: 7, Username: "ann", Email: "ann@x.com", Role: role}
	token, _, err := tokens.NewAccess(u, testSecret, ttl)
	require.NoError(t, err)
	return token
}

func doRequest(auth *Auth, roles []string, header string) *httptest.ResponseRecorder {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	wrapped := handler
	if roles != nil {
		wrapped = auth.RequireRoles(roles...)(wrapped)
	}
	wrapped = auth.RequireAuth(wrapped)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := wrapped(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	rec := doRequest(auth, nil, "Bearer "+accessToken(t, "user", 15*time.Minute))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	rec := doRequest(auth, nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_NotBearer(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	rec := doRequest(auth, nil, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	rec := doRequest(auth, nil, "Bearer "+accessToken(t, "user", -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	t.Parallel()
	auth := NewAuth([]byte("a-different-secret"))

	rec := doRequest(auth, nil, "Bearer "+accessToken(t, "user", 15*time.Minute))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles_Allowed(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	rec := doRequest(auth, []string{"admin"}, "Bearer "+accessToken(t, "admin", 15*time.Minute))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	rec := doRequest(auth, []string{"admin"}, "Bearer "+accessToken(t, "user", 15*time.Minute))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles_MultipleRoles(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	rec := doRequest(auth, []string{"user", "admin"}, "Bearer "+accessToken(t, "user", 15*time.Minute))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_WithoutClaims(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	e := echo.New()
	handler := auth.RequireRoles("admin")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClaimsFrom_AttachedByRequireAuth(t *testing.T) {
	t.Parallel()
	auth := NewAuth(testSecret)

	e := echo.New()
	var got *tokens.AccessClaims
	handler := auth.RequireAuth(func(c echo.Context) error {
		got = ClaimsFrom(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken(t, "admin", 15*time.Minute))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	require.NotNil(t, got)
	assert.Equal(t, "ann", got.Username)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, "7", got.Subject)
}
