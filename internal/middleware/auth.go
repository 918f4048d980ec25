package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nsharma-dev/institute_admin/internal/tokens"
)

const claimsKey = "auth_claims"

// Auth gates protected routes. RequireAuth proves the caller holds a live
// access token; RequireRoles is a separate check against the allow-set a
// route declares for itself. There is no implicit role hierarchy.
type Auth struct {
	JWTSecret []byte
}

func NewAuth(secret []byte) *Auth {
	return &Auth{JWTSecret: secret}
}

// RequireAuth reads the bearer access token, verifies it and attaches the
// decoded claims to the request context. Missing, malformed and expired
// tokens all reject with 401 before any handler logic runs.
func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.ParseAccess(tokenStr, m.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

// RequireRoles admits only callers whose role is in the allow-set. It must
// run after RequireAuth.
func (m *Auth) RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims attached by RequireAuth, or nil.
func ClaimsFrom(c echo.Context) *tokens.AccessClaims {
	if claims, ok := c.Get(claimsKey).(*tokens.AccessClaims); ok {
		return claims
	}
	return nil
}
