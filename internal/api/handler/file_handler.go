package handler

import (
	"github.com/labstack/echo/v4"
)

// FileLocator resolves a stored upload to a path on disk.
type FileLocator interface {
	Path(name string) (string, error)
}

type FileHandler struct {
	files FileLocator
}

func NewFileHandler(files FileLocator) *FileHandler {
	return &FileHandler{files: files}
}

// Serve streams a stored upload.
//
// @Summary      Download an uploaded file
// @Tags         projects
// @Param        filename  path  string  true  "Stored file name"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /uploads/{filename} [get]
func (h *FileHandler) Serve(c echo.Context) error {
	p, err := h.files.Path(c.Param("filename"))
	if err != nil {
		return err
	}
	return c.File(p)
}
