package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"openlaunch/internal/domain"
)

var articleColumns = []string{"id", "author_id", "title", "slug", "summary", "body", "created_at", "updated_at"}

type articleRepository struct {
	DB *sql.DB
	sb sq.StatementBuilderType
}

func NewArticleRepository(db *sql.DB) domain.ArticleRepository {
	return &articleRepository{
		DB: db,
		sb: statementBuilder,
	}
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	a := &domain.Article{}
	if err := row.Scan(&a.ID, &a.AuthorID, &a.Title, &a.Slug, &a.Summary, &a.Body, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *articleRepository) Create(ctx context.Context, a *domain.Article) error {
	query := `
		INSERT INTO articles (author_id, title, slug, summary, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.AuthorID, a.Title, a.Slug, a.Summary, a.Body, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	query, args, err := r.sb.Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	a, err := scanArticle(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *articleRepository) ListFeed(ctx context.Context, after *domain.ArticleCursor, limit int) ([]*domain.Article, error) {
	q := r.sb.Select(articleColumns...).From("articles")
	if after != nil {
		q = q.Where(sq.Expr("(created_at, id) < (?, ?)", after.CreatedAt, after.ID))
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
	articles := make([]*domain.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
