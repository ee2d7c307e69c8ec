package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/core/ports"
)

type ProjectService struct {
	repo        ports.ProjectRepository
	files       ports.FileStore
	autoApprove bool
	logger      zerolog.Logger
}

// NewProjectService wires the project use cases. With autoApprove set, new
// uploads are published immediately; otherwise they wait for an admin.
func NewProjectService(repo ports.ProjectRepository, files ports.FileStore, autoApprove bool, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, files: files, autoApprove: autoApprove, logger: logger}
}

func (s *ProjectService) ListApproved(ctx context.Context, query string) ([]*domain.Project, error) {
	return s.repo.List(ctx, ports.ListProjectsFilter{
		Status: domain.StatusApproved,
		Search: strings.TrimSpace(query),
	})
}

// Create stores the uploaded file under its sanitized name and inserts the
// project row. The extension check runs before anything is written.
func (s *ProjectService) Create(ctx context.Context, actor domain.Actor, in ports.CreateProjectInput) (*domain.Project, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}

	name := domain.SanitizeFilename(in.Filename)
	if name == "" || !domain.IsAllowedFile(name) {
		return nil, fmt.Errorf("%q: %w", in.Filename, domain.ErrUnsupportedFileType)
	}

	if err := s.files.Save(ctx, name, in.Content); err != nil {
		return nil, fmt.Errorf("save file: %w", err)
	}

	status := domain.StatusApproved
	if !s.autoApprove {
		status = domain.StatusPending
	}

	project, err := s.repo.Create(ctx, &domain.Project{
		Title:       in.Title,
		Description: in.Description,
		File:        name,
		Status:      status,
		OwnerID:     actor.UserID,
	})
	if err != nil {
		if rmErr := s.files.Remove(ctx, name); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("file", name).Msg("failed to remove file after insert error")
		}
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().
		Int64("project_id", project.ID).
		Int64("user_id", actor.UserID).
		Str("file", name).
		Str("status", string(status)).
		Msg("project created")
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// Edit updates title and description in place. Concurrent edits are
// last-write-wins.
func (s *ProjectService) Edit(ctx context.Context, actor domain.Actor, id int64, title, description string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(project) {
		return nil, domain.ErrUnauthorized
	}

	if err := s.repo.UpdateDetails(ctx, id, title, description); err != nil {
		return nil, err
	}
	project.Title = title
	project.Description = description

	s.logger.Info().Int64("project_id", id).Int64("user_id", actor.UserID).Msg("project updated")
	return project, nil
}

// Delete removes the stored file first, then the row.
func (s *ProjectService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(project) {
		return domain.ErrUnauthorized
	}

	if err := s.files.Remove(ctx, project.File); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("project_id", id).Int64("user_id", actor.UserID).Str("file", project.File).Msg("project deleted")
	return nil
}

// Approve publishes a project. Approving an already approved project is a
// no-op that still succeeds.
func (s *ProjectService) Approve(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if err := s.repo.UpdateStatus(ctx, id, domain.StatusApproved); err != nil {
		return err
	}
	s.logger.Info().Int64("project_id", id).Str("admin", actor.Username).Msg("project approved")
	return nil
}

func (s *ProjectService) ListAll(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, ports.ListProjectsFilter{})
}
