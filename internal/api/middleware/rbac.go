package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studentworks/showcase/internal/api/session"
	"github.com/studentworks/showcase/internal/core/domain"
)

// RBAC enforces role-based access control on the request Actor.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := session.ActorFrom(c)
			if _, ok := allowed[actor.Role]; !ok || !actor.Authenticated() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			}
			return next(c)
		}
	}
}
