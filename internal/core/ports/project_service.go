package ports

import (
	"context"
	"io"

	"github.com/studentworks/showcase/internal/core/domain"
)

// CreateProjectInput carries everything needed to publish a new project.
type CreateProjectInput struct {
	Title       string
	Description string
	// Filename is the client-supplied name; it is sanitized before storage.
	Filename string
	Content  io.Reader
}

// ProjectService defines the project use cases. Every mutating call takes
// the Actor performing it.
type ProjectService interface {
	ListApproved(ctx context.Context, query string) ([]*domain.Project, error)
	Create(ctx context.Context, actor domain.Actor, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Edit(ctx context.Context, actor domain.Actor, id int64, title, description string) (*domain.Project, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
	Approve(ctx context.Context, actor domain.Actor, id int64) error
	ListAll(ctx context.Context, actor domain.Actor) ([]*domain.Project, error)
}
