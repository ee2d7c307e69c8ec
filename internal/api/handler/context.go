package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/studentworks/showcase/internal/api/session"
	"github.com/studentworks/showcase/internal/core/domain"
)

// Sessions is the part of session.Manager the handlers use.
type Sessions interface {
	SignIn(c echo.Context, user *domain.User) error
	SignOut(c echo.Context) error
	Flash(c echo.Context, msg string) error
	Flashes(c echo.Context) ([]string, error)
}

// ctxActor returns the Actor injected by the Auth middleware.
func ctxActor(c echo.Context) domain.Actor {
	return session.ActorFrom(c)
}

// pathID parses the :id route parameter. Anything that is not a positive
// integer is reported as a missing resource.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}

// newPage pops the queued flash messages and fills in the signed-in user.
func newPage(c echo.Context, s Sessions, view string) (page, error) {
	flashes, err := s.Flashes(c)
	if err != nil {
		return page{}, err
	}
	return page{View: view, Flashes: flashes, User: toUserResponse(ctxActor(c))}, nil
}

// redirectWithFlash queues msg and sends the client to path.
func redirectWithFlash(c echo.Context, s Sessions, path, msg string) error {
	if err := s.Flash(c, msg); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, path)
}
