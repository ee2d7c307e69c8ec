package handler

import (
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/studentworks/showcase/internal/api/metrics"
	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/core/ports"
)

const (
	msgUploaded        = "Project uploaded successfully."
	msgInvalidFileType = "Invalid file type. Only PDF, DOC, DOCX, and images (PNG, JPG, JPEG, GIF) are allowed."
	msgDeleted         = "Project deleted successfully."
	msgUnauthorizedAct = "Unauthorized action."
	msgUnauthorizedAcc = "Unauthorized access."
	msgUpdated         = "Project updated successfully."
	msgNotFound        = "Project not found."
)

// ProjectHandler serves the public listings and the student project routes.
type ProjectHandler struct {
	service  ports.ProjectService
	sessions Sessions
}

func NewProjectHandler(service ports.ProjectService, sessions Sessions) *ProjectHandler {
	return &ProjectHandler{service: service, sessions: sessions}
}

// Index lists every approved project.
//
// @Summary      Approved projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  listPage
// @Router       / [get]
func (h *ProjectHandler) Index(c echo.Context) error {
	projects, err := h.service.ListApproved(c.Request().Context(), "")
	if err != nil {
		return err
	}
	p, err := newPage(c, h.sessions, "index")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPage{page: p, Projects: toProjectList(projects)})
}

// Browse lists approved projects whose title or description contains q.
//
// @Summary      Search approved projects
// @Tags         projects
// @Produce      json
// @Param        q    query     string  false  "Case-insensitive search text"
// @Success      200  {object}  listPage
// @Router       /browse [get]
func (h *ProjectHandler) Browse(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	projects, err := h.service.ListApproved(c.Request().Context(), query)
	if err != nil {
		return err
	}
	p, err := newPage(c, h.sessions, "browse")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPage{page: p, Projects: toProjectList(projects), Query: query})
}

// UploadForm renders the upload page.
//
// @Summary      Upload page
// @Tags         projects
// @Produce      json
// @Success      200  {object}  page
// @Failure      302  "anonymous visitors are sent to /login"
// @Router       /upload [get]
func (h *ProjectHandler) UploadForm(c echo.Context) error {
	p, err := newPage(c, h.sessions, "upload")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Upload stores a new project and its file.
//
// @Summary      Upload a project
// @Tags         projects
// @Accept       multipart/form-data
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        file         formData  file    true   "Project file (pdf, doc, docx, png, jpg, jpeg, gif)"
// @Success      302
// @Failure      400  {object}  errorResponse
// @Router       /upload [post]
func (h *ProjectHandler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return redirectWithFlash(c, h.sessions, "/upload", err.Error())
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return redirectWithFlash(c, h.sessions, "/upload", msgInvalidFileType)
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	project, err := h.service.Create(c.Request().Context(), ctxActor(c), ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Filename:    fh.Filename,
		Content:     src,
	})
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return redirectWithFlash(c, h.sessions, "/upload", msgInvalidFileType)
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Redirect(http.StatusFound, "/login")
	case err != nil:
		return err
	}

	metrics.ProjectsUploadedTotal.WithLabelValues(strings.ToLower(strings.TrimPrefix(path.Ext(project.File), "."))).Inc()
	return redirectWithFlash(c, h.sessions, "/", msgUploaded)
}

// Show renders a single project.
//
// @Summary      Project detail
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  projectPage
// @Failure      404  {object}  errorResponse
// @Router       /project/{id} [get]
func (h *ProjectHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	project, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	p, err := newPage(c, h.sessions, "project")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectPage{page: p, Project: toProjectResponse(project)})
}

// EditForm renders the edit page for the owner or an admin.
//
// @Summary      Edit page
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  projectPage
// @Router       /edit/{id} [get]
func (h *ProjectHandler) EditForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	project, err := h.service.Get(c.Request().Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return redirectWithFlash(c, h.sessions, "/", msgNotFound)
	}
	if err != nil {
		return err
	}
	if !ctxActor(c).CanModify(project) {
		return redirectWithFlash(c, h.sessions, "/", msgUnauthorizedAcc)
	}

	p, err := newPage(c, h.sessions, "edit")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectPage{page: p, Project: toProjectResponse(project)})
}

// Edit updates the title and description of a project.
//
// @Summary      Edit a project
// @Tags         projects
// @Accept       x-www-form-urlencoded
// @Param        id           path      int     true   "Project ID"
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Success      302
// @Router       /edit/{id} [post]
func (h *ProjectHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req editRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return redirectWithFlash(c, h.sessions, editPath(id), err.Error())
	}

	_, err = h.service.Edit(c.Request().Context(), ctxActor(c), id, req.Title, req.Description)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return redirectWithFlash(c, h.sessions, "/", msgNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		return redirectWithFlash(c, h.sessions, "/", msgUnauthorizedAcc)
	case err != nil:
		return err
	}
	return redirectWithFlash(c, h.sessions, "/project/"+strconv.FormatInt(id, 10), msgUpdated)
}

// Delete removes a project and its stored file.
//
// @Summary      Delete a project
// @Tags         projects
// @Param        id  path  int  true  "Project ID"
// @Success      302
// @Router       /delete/{id} [post]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), ctxActor(c), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return redirectWithFlash(c, h.sessions, "/", msgNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		return redirectWithFlash(c, h.sessions, "/", msgUnauthorizedAct)
	case err != nil:
		return err
	}

	metrics.ProjectsDeletedTotal.Inc()
	return redirectWithFlash(c, h.sessions, "/", msgDeleted)
}

func editPath(id int64) string {
	return "/edit/" + strconv.FormatInt(id, 10)
}
