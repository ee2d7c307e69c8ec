package ports

import (
	"context"

	"github.com/studentworks/showcase/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts the user and returns it with its generated ID.
	// A taken username yields domain.ErrDuplicateUsername.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	SetRole(ctx context.Context, username string, role domain.Role) error
}
