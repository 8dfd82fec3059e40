package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go.pilab.hu/partsdesk/api"
	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/auth/rbac"
)

// RequireRole gates a route on the session's role. Runs after
// RequireSession; a role outside the allow-list never reaches the handler.
func RequireRole(allow ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFrom(c)
			if session == nil {
				return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidSession))
			}
			if !rbac.Allowed(session.Role, allow...) {
				return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidPermission))
			}
			return next(c)
		}
	}
}
