package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/studentworks/showcase/internal/core/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var id int64
	err := withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		q := conn.Rebind(`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?) RETURNING id`)
		return conn.QueryRowxContext(ctx, q, user.Username, user.PasswordHash, string(user.Role)).Scan(&id)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userRow
	err := withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		q := conn.Rebind(`SELECT id, username, password_hash, role FROM users WHERE username = ?`)
		return conn.GetContext(ctx, &row, q, username)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) SetRole(ctx context.Context, username string, role domain.Role) error {
	return withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		q := conn.Rebind(`UPDATE users SET role = ? WHERE username = ?`)
		res, err := conn.ExecContext(ctx, q, string(role), username)
		if err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		return rowsAffectedOrNotFound(res, domain.ErrNotFound)
	})
}
