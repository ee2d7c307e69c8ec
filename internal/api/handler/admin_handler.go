package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studentworks/showcase/internal/api/metrics"
	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/core/ports"
)

const msgApproved = "Project approved."

// AdminHandler serves the moderation routes. The router guards it with the
// admin RBAC middleware; the service checks the role again.
type AdminHandler struct {
	service  ports.ProjectService
	sessions Sessions
}

func NewAdminHandler(service ports.ProjectService, sessions Sessions) *AdminHandler {
	return &AdminHandler{service: service, sessions: sessions}
}

// Dashboard lists every project regardless of status.
//
// @Summary      Moderation dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  listPage
// @Failure      403  {object}  errorResponse
// @Router       /admin [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	projects, err := h.service.ListAll(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	p, err := newPage(c, h.sessions, "admin")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPage{page: p, Projects: toProjectList(projects)})
}

// Approve publishes a pending project.
//
// @Summary      Approve a project
// @Tags         admin
// @Param        id   path  int  true  "Project ID"
// @Success      302
// @Failure      403  {object}  errorResponse
// @Router       /approve/{id} [get]
func (h *AdminHandler) Approve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.Approve(c.Request().Context(), ctxActor(c), id)
	if errors.Is(err, domain.ErrNotFound) {
		return redirectWithFlash(c, h.sessions, "/admin", msgNotFound)
	}
	if err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("approve").Inc()
	return redirectWithFlash(c, h.sessions, "/admin", msgApproved)
}
