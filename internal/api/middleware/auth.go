package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studentworks/showcase/internal/api/session"
	"github.com/studentworks/showcase/internal/core/domain"
)

// ActorLoader is the subset of session.Manager the middleware needs.
type ActorLoader interface {
	Actor(c echo.Context) (domain.Actor, error)
}

// Auth resolves the session Actor and injects it into the context. Requests
// without a session continue as the anonymous Actor.
func Auth(sessions ActorLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := sessions.Actor(c)
			if err != nil {
				return err
			}
			session.SetActor(c, actor)
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous visitors to the login page.
func RequireLogin(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.ActorFrom(c).Authenticated() {
				return c.Redirect(http.StatusFound, loginPath)
			}
			return next(c)
		}
	}
}
