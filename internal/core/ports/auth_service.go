package ports

import (
	"context"

	"github.com/studentworks/showcase/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

// AccountAdmin covers the out-of-band account operations used by the admin CLI.
type AccountAdmin interface {
	CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	SetRole(ctx context.Context, username string, role domain.Role) error
}
