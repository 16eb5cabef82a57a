package domain

import (
	"context"
	"time"

	"openlaunch/internal/pagination"
)

// Comment is a discussion entry on a project.
// swagger:model Comment
type Comment struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) GetID() string { return c.ID }

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListByProject returns up to limit comments, newest first, strictly after the
	// comment with ID afterID ("" = from the newest).
	ListByProject(ctx context.Context, projectID, afterID string, limit int) ([]*Comment, error)
	// ExistsInProject reports whether the comment is stored under the project.
	ExistsInProject(ctx context.Context, projectID, commentID string) (bool, error)
}

// CommentService defines the business logic for project comments.
type CommentService interface {
	CreateComment(ctx context.Context, comment *Comment) error
	ListComments(ctx context.Context, projectID string, params pagination.NormalizedCursorParams) (pagination.CursorResult[*Comment], error)
}
