package domain

import (
	"context"
	"time"

	"openlaunch/internal/pagination"
)

// Article is a long-form post shown in the article feed.
// swagger:model Article
type Article struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Article) GetID() string { return a.ID }

// ArticleCursorVersion is bumped whenever ArticleCursor changes shape.
// Cursors carrying another version are ignored.
const ArticleCursorVersion = 1

// ArticleCursor is the feed position after a given article, ordered by (created_at, id) descending.
type ArticleCursor struct {
	V         int       `json:"v"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}

// NewArticleCursor returns the cursor positioned right after a.
func NewArticleCursor(a *Article) ArticleCursor {
	return ArticleCursor{V: ArticleCursorVersion, CreatedAt: a.CreatedAt, ID: a.ID}
}

// ArticleRepository defines the interface for article storage.
type ArticleRepository interface {
	Create(ctx context.Context, article *Article) error
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	// ListFeed returns up to limit articles strictly after the cursor (nil = from the newest).
	ListFeed(ctx context.Context, after *ArticleCursor, limit int) ([]*Article, error)
}

// ArticleService defines the business logic for articles.
type ArticleService interface {
	CreateArticle(ctx context.Context, article *Article) error
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	ListFeed(ctx context.Context, params pagination.NormalizedCursorParams) (pagination.CursorResult[*Article], error)
}
