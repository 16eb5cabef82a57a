package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"openlaunch/internal/domain"
)

var projectColumns = []string{
	"id", "owner_id", "name", "slug", "tagline", "description", "website_url", "upvote_count", "created_at", "updated_at",
}

type projectRepository struct {
	DB *sql.DB
	sb sq.StatementBuilderType
}

func NewProjectRepository(db *sql.DB) domain.ProjectRepository {
	return &projectRepository{
		DB: db,
		sb: statementBuilder,
	}
}

func scanProject(row rowScanner) (*domain.Project, error) {
	p := &domain.Project{}
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Slug, &p.Tagline, &p.Description, &p.WebsiteURL, &p.UpvoteCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (owner_id, name, slug, tagline, description, website_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, upvote_count
	`
	err := r.DB.QueryRowContext(ctx, query, p.OwnerID, p.Name, p.Slug, p.Tagline, p.Description, p.WebsiteURL, p.CreatedAt, p.UpdatedAt).
		Scan(&p.ID, &p.UpvoteCount)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *projectRepository) getOne(ctx context.Context, column, value string) (*domain.Project, error) {
	query, args, err := r.sb.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	p, err := scanProject(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return r.getOne(ctx, "id", id)
}

func (r *projectRepository) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *projectRepository) List(ctx context.Context, sort domain.ProjectSort, limit, offset int) ([]*domain.Project, error) {
	q := r.sb.Select(projectColumns...).From("projects")
	if sort == domain.ProjectSortTop {
		q = q.OrderBy("upvote_count DESC", "created_at DESC", "id DESC")
	} else {
		q = q.OrderBy("created_at DESC", "id DESC")
	}
	query, args, err := q.Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	projects := make([]*domain.Project, 0, limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("projects").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var total int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *projectRepository) Upvote(ctx context.Context, projectID, userID string) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO project_upvotes (project_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (project_id, user_id) DO NOTHING
	`, projectID, userID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return 0, domain.ErrAlreadyUpvoted
	}

	var count int
	err = tx.QueryRowContext(ctx, `
		UPDATE projects SET upvote_count = upvote_count + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING upvote_count
	`, projectID).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}
