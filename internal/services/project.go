package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"openlaunch/internal/domain"
	"openlaunch/internal/pagination"
)

type projectService struct {
	projectRepo    domain.ProjectRepository
	contextTimeout time.Duration
}

func NewProjectService(projectRepo domain.ProjectRepository, timeout time.Duration) domain.ProjectService {
	return &projectService{
		projectRepo:    projectRepo,
		contextTimeout: timeout,
	}
}

func (s *projectService) CreateProject(ctx context.Context, project *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if project.OwnerID == "" {
		return fmt.Errorf("project owner is required")
	}
	project.Slug = slugify(project.Name)
	if project.Slug == "" {
		return domain.ErrEmptySlug
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *projectService) GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.projectRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// ListProjects counts first and skips the page query when the requested page is past the end.
func (s *projectService) ListProjects(ctx context.Context, sort domain.ProjectSort, params pagination.NormalizedOffsetParams) (pagination.OffsetResult[*domain.Project], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	total, err := s.projectRepo.Count(ctx)
	if err != nil {
		return pagination.OffsetResult[*domain.Project]{}, fmt.Errorf("count projects: %w", err)
	}
	var items []*domain.Project
	if offset := params.Offset(); offset >= 0 && offset < total {
		items, err = s.projectRepo.List(ctx, sort, params.Limit, offset)
		if err != nil {
			return pagination.OffsetResult[*domain.Project]{}, fmt.Errorf("list projects: %w", err)
		}
	}
	return pagination.BuildOffsetResult(items, total, params), nil
}

func (s *projectService) Upvote(ctx context.Context, projectID, userID string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.projectRepo.Upvote(ctx, projectID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyUpvoted) {
			return nil, err
		}
		return nil, fmt.Errorf("upvote project: %w", err)
	}
	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}
