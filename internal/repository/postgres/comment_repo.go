package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"openlaunch/internal/domain"
)

var commentColumns = []string{"id", "project_id", "author_id", "body", "created_at"}

type commentRepository struct {
	DB *sql.DB
	sb sq.StatementBuilderType
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{
		DB: db,
		sb: statementBuilder,
	}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (project_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, c.ProjectID, c.AuthorID, c.Body, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *commentRepository) ExistsInProject(ctx context.Context, projectID, commentID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND project_id = $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, commentID, projectID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByProject pages by (created_at, id) of the afterID row. Callers check the row
// exists first; a missing afterID row matches nothing.
func (r *commentRepository) ListByProject(ctx context.Context, projectID, afterID string, limit int) ([]*domain.Comment, error) {
	q := r.sb.Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"project_id": projectID})
	if afterID != "" {
		q = q.Where(sq.Expr("(created_at, id) < (SELECT c.created_at, c.id FROM comments c WHERE c.id = ?)", afterID))
	}
	query, args, err := q.OrderBy("created_at DESC", "id DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := make([]*domain.Comment, 0, limit)
	for rows.Next() {
		c := &domain.Comment{}
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
