package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"openlaunch/internal/domain"
	"openlaunch/internal/pagination"
)

type articleService struct {
	articleRepo    domain.ArticleRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewArticleService(articleRepo domain.ArticleRepository, logger *slog.Logger, timeout time.Duration) domain.ArticleService {
	return &articleService{
		articleRepo:    articleRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, article *domain.Article) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if article.AuthorID == "" {
		return fmt.Errorf("article author is required")
	}
	article.Slug = slugify(article.Title)
	if article.Slug == "" {
		return domain.ErrEmptySlug
	}
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	if err := s.articleRepo.Create(ctx, article); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

func (s *articleService) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// ListFeed pages the feed newest first. A cursor that does not decode, was issued for
// another cursor version or names a malformed article ID restarts from the first page.
func (s *articleService) ListFeed(ctx context.Context, params pagination.NormalizedCursorParams) (pagination.CursorResult[*domain.Article], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	after := s.decodeCursor(ctx, params.Cursor)
	items, err := s.articleRepo.ListFeed(ctx, after, params.Limit+1)
	if err != nil {
		return pagination.CursorResult[*domain.Article]{}, fmt.Errorf("list articles: %w", err)
	}
	return pagination.BuildCursorResultFunc(items, params.Limit, func(a *domain.Article) string {
		return pagination.EncodeCursorValue(domain.NewArticleCursor(a))
	}), nil
}

func (s *articleService) decodeCursor(ctx context.Context, cursor string) *domain.ArticleCursor {
	if cursor == "" {
		return nil
	}
	c, ok := pagination.DecodeCursorValue[domain.ArticleCursor](cursor)
	if !ok || c.V != domain.ArticleCursorVersion {
		s.logger.DebugContext(ctx, "ignoring invalid article cursor", "cursor", cursor)
		return nil
	}
	id, err := uuid.Parse(c.ID)
	if err != nil {
		s.logger.DebugContext(ctx, "ignoring article cursor with malformed id", "cursor", cursor)
		return nil
	}
	c.ID = id.String()
	return &c
}
