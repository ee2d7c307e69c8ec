package ports

import (
	"context"

	"github.com/studentworks/showcase/internal/core/domain"
)

// ListProjectsFilter carries the optional constraints of a project listing.
type ListProjectsFilter struct {
	Status domain.ProjectStatus // empty = any status
	Search string               // case-insensitive substring of title or description
}

// ProjectRepository defines persistence operations for projects. Methods
// addressing a single row return domain.ErrNotFound when it does not exist.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, error)
	UpdateDetails(ctx context.Context, id int64, title, description string) error
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
	Delete(ctx context.Context, id int64) error
}
