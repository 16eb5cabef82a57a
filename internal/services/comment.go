package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"openlaunch/internal/domain"
	"openlaunch/internal/pagination"
)

const commentExcerptLength = 200

type commentService struct {
	commentRepo    domain.CommentRepository
	projectRepo    domain.ProjectRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	appBaseURL     string
	contextTimeout time.Duration
}

func NewCommentService(commentRepo domain.CommentRepository,
	projectRepo domain.ProjectRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	appBaseURL string,
	timeout time.Duration,
) domain.CommentService {
	return &commentService{
		commentRepo:    commentRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		logger:         logger,
		appBaseURL:     strings.TrimSuffix(appBaseURL, "/"),
		contextTimeout: timeout,
	}
}

// CreateComment stores the comment and emails the project owner when someone else
// commented. Notification failures are logged, never returned.
func (s *commentService) CreateComment(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if comment.AuthorID == "" {
		return fmt.Errorf("comment author is required")
	}
	project, err := s.projectRepo.GetByID(ctx, comment.ProjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get project: %w", err)
	}
	comment.Body = strings.TrimSpace(comment.Body)
	comment.CreatedAt = time.Now()
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create comment: %w", err)
	}

	if project.OwnerID != comment.AuthorID {
		if err := s.notifyOwner(ctx, project, comment); err != nil {
			s.logger.WarnContext(ctx, "failed to send comment notification", "project_id", project.ID, "comment_id", comment.ID, "err", err)
		}
	}
	return nil
}

func (s *commentService) notifyOwner(ctx context.Context, project *domain.Project, comment *domain.Comment) error {
	owner, err := s.userRepo.GetByID(ctx, project.OwnerID)
	if err != nil {
		return fmt.Errorf("get owner: %w", err)
	}
	commenterName := "Someone"
	if commenter, err := s.userRepo.GetByID(ctx, comment.AuthorID); err == nil {
		commenterName = displayName(commenter)
	}
	return s.emailService.SendNewCommentNotification(ctx, &domain.NewCommentEmailData{
		Email:          owner.Email,
		OwnerName:      displayName(owner),
		CommenterName:  commenterName,
		ProjectName:    project.Name,
		ProjectURL:     s.appBaseURL + "/projects/" + project.Slug,
		CommentExcerpt: excerpt(comment.Body, commentExcerptLength),
	})
}

func displayName(u *domain.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// ListComments pages a project's comments newest first. The cursor is the ID of the
// last comment seen; anything that is not a UUID, or names a comment no longer stored
// under the project, restarts from the first page.
func (s *commentService) ListComments(ctx context.Context, projectID string, params pagination.NormalizedCursorParams) (pagination.CursorResult[*domain.Comment], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return pagination.CursorResult[*domain.Comment]{}, domain.ErrNotFound
		}
		return pagination.CursorResult[*domain.Comment]{}, fmt.Errorf("get project: %w", err)
	}

	afterID, err := s.resolveCursor(ctx, projectID, params.Cursor)
	if err != nil {
		return pagination.CursorResult[*domain.Comment]{}, err
	}

	items, err := s.commentRepo.ListByProject(ctx, projectID, afterID, params.Limit+1)
	if err != nil {
		return pagination.CursorResult[*domain.Comment]{}, fmt.Errorf("list comments: %w", err)
	}
	return pagination.BuildCursorResult(items, params.Limit), nil
}

func (s *commentService) resolveCursor(ctx context.Context, projectID, cursor string) (string, error) {
	if cursor == "" {
		return "", nil
	}
	id, err := uuid.Parse(cursor)
	if err != nil {
		s.logger.DebugContext(ctx, "ignoring invalid comment cursor", "cursor", cursor)
		return "", nil
	}
	exists, err := s.commentRepo.ExistsInProject(ctx, projectID, id.String())
	if err != nil {
		return "", fmt.Errorf("check comment cursor: %w", err)
	}
	if !exists {
		s.logger.DebugContext(ctx, "comment cursor points at a missing comment", "cursor", cursor, "project_id", projectID)
		return "", nil
	}
	return id.String(), nil
}
