package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/core/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	File        string         `db:"file"`
	Status      string         `db:"status"`
	UserID      int64          `db:"user_id"`
	OwnerName   sql.NullString `db:"owner_name"`
}

func (r projectRow) toDomain() *domain.Project {
	return &domain.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		File:        r.File,
		Status:      domain.ProjectStatus(r.Status),
		OwnerID:     r.UserID,
		OwnerName:   r.OwnerName.String,
	}
}

const selectProjects = `
	SELECT p.id, p.title, p.description, p.file, p.status, p.user_id, u.username AS owner_name
	FROM projects p
	LEFT JOIN users u ON u.id = p.user_id`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	var id int64
	err := withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		q := conn.Rebind(`INSERT INTO projects (title, description, file, status, user_id) VALUES (?, ?, ?, ?, ?) RETURNING id`)
		return conn.QueryRowxContext(ctx, q, p.Title, p.Description, p.File, string(p.Status), p.OwnerID).Scan(&id)
	})
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *p
	created.ID = id
	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	var row projectRow
	err := withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &row, conn.Rebind(selectProjects+` WHERE p.id = ?`), id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return row.toDomain(), nil
}

// List returns matching projects in insertion order. Search terms are
// matched literally; LIKE wildcards in them are escaped.
func (r *ProjectRepository) List(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		where = append(where, "p.status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		where = append(where, `(LOWER(p.title) LIKE ? ESCAPE '\' OR LOWER(p.description) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	query := selectProjects
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.id"

	var rows []projectRow
	err := withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &rows, conn.Rebind(query), args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]*domain.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ProjectRepository) UpdateDetails(ctx context.Context, id int64, title, description string) error {
	return r.exec(ctx, "update project", `UPDATE projects SET title = ?, description = ? WHERE id = ?`, title, description, id)
}

// UpdateStatus counts matched rows, so setting the current status again still
// succeeds.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	return r.exec(ctx, "update status", `UPDATE projects SET status = ? WHERE id = ?`, string(status), id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, "delete project", `DELETE FROM projects WHERE id = ?`, id)
}

func (r *ProjectRepository) exec(ctx context.Context, op, query string, args ...any) error {
	return withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx, conn.Rebind(query), args...)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return rowsAffectedOrNotFound(res, domain.ErrNotFound)
	})
}
