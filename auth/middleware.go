package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// the Authorization header wins; the query parameter exists for players
// that cannot set headers on media element requests
func tokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.QueryParam("token")
}

// Require builds middleware that resolves the bearer credential and rejects
// callers whose role is not in `roles`. Authorization happens before the
// request body is read, so unauthorized uploads never reach the staging dir.
func Require(v Verifier, roles ...string) echo.MiddlewareFunc {
	allowed := map[string]bool{}
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: No token provided"})
			}
			ident, err := v.Verify(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden: Invalid token"})
			}
			if !allowed[ident.Role] {
				log.Warnf("role %q denied for %s %s", ident.Role, c.Request().Method, c.Path())
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden: Insufficient permissions"})
			}
			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

func GetIdentity(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityKey).(Identity)
	return ident, ok
}
