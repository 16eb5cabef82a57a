package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"openlaunch/internal/domain"
	"openlaunch/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeArticleRepo keeps articles newest first, the order ListFeed returns them in.
type fakeArticleRepo struct {
	articles  []*domain.Article
	lastAfter *domain.ArticleCursor
	lastLimit int
}

func (f *fakeArticleRepo) Create(ctx context.Context, a *domain.Article) error {
	for _, existing := range f.articles {
		if existing.Slug == a.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	a.ID = articleID(len(f.articles) + 1)
	f.articles = append([]*domain.Article{a}, f.articles...)
	return nil
}

func (f *fakeArticleRepo) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeArticleRepo) ListFeed(ctx context.Context, after *domain.ArticleCursor, limit int) ([]*domain.Article, error) {
	f.lastAfter, f.lastLimit = after, limit
	start := 0
	if after != nil {
		for i, a := range f.articles {
			if a.ID == after.ID {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, len(f.articles))
	return f.articles[start:end], nil
}

func articleID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

func makeArticles(n int) []*domain.Article {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out := make([]*domain.Article, n)
	for i := range out {
		out[i] = &domain.Article{
			ID:        articleID(i + 1),
			Title:     fmt.Sprintf("Article %d", i+1),
			Slug:      fmt.Sprintf("article-%d", i+1),
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return out
}

func TestArticleService_ListFeed_walksAllPages(t *testing.T) {
	ctx := context.Background()
	repo := &fakeArticleRepo{articles: makeArticles(5)}
	svc := NewArticleService(repo, discardLogger(), 5*time.Second)

	var seen []string
	cursor := ""
	for range 10 {
		page, err := svc.ListFeed(ctx, pagination.NormalizedCursorParams{Cursor: cursor, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, repo.lastLimit)
		for _, a := range page.Items {
			seen = append(seen, a.ID)
		}
		if !page.HasMore {
			assert.Nil(t, page.NextCursor)
			break
		}
		require.NotNil(t, page.NextCursor)
		cursor = *page.NextCursor
	}
	assert.Equal(t, []string{articleID(1), articleID(2), articleID(3), articleID(4), articleID(5)}, seen)
}

func TestArticleService_ListFeed_cursorCarriesPosition(t *testing.T) {
	repo := &fakeArticleRepo{articles: makeArticles(3)}
	svc := NewArticleService(repo, discardLogger(), 5*time.Second)

	page, err := svc.ListFeed(context.Background(), pagination.NormalizedCursorParams{Limit: 1})
	require.NoError(t, err)
	require.True(t, page.HasMore)

	c, ok := pagination.DecodeCursorValue[domain.ArticleCursor](*page.NextCursor)
	require.True(t, ok)
	assert.Equal(t, domain.ArticleCursorVersion, c.V)
	assert.Equal(t, articleID(1), c.ID)
	assert.True(t, c.CreatedAt.Equal(repo.articles[0].CreatedAt))
}

func TestArticleService_ListFeed_invalidCursorRestarts(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "not base64", cursor: "%%%"},
		{name: "unrelated object", cursor: pagination.EncodeCursor(map[string]any{"foo": "bar"})},
		{name: "stale version", cursor: pagination.EncodeCursorValue(domain.ArticleCursor{V: domain.ArticleCursorVersion + 1, ID: articleID(1)})},
		{name: "id is not a uuid", cursor: pagination.EncodeCursorValue(domain.ArticleCursor{V: domain.ArticleCursorVersion, ID: "'; not-a-uuid"})},
		{name: "empty id", cursor: pagination.EncodeCursorValue(domain.ArticleCursor{V: domain.ArticleCursorVersion, CreatedAt: time.Now()})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeArticleRepo{articles: makeArticles(3)}
			svc := NewArticleService(repo, discardLogger(), 5*time.Second)

			page, err := svc.ListFeed(context.Background(), pagination.NormalizedCursorParams{Cursor: tt.cursor, Limit: 20})
			require.NoError(t, err)
			assert.Nil(t, repo.lastAfter)
			assert.Len(t, page.Items, 3)
			assert.False(t, page.HasMore)
		})
	}
}

func TestArticleService_CreateArticle(t *testing.T) {
	repo := &fakeArticleRepo{}
	svc := NewArticleService(repo, discardLogger(), 5*time.Second)

	a := &domain.Article{AuthorID: "user-1", Title: "Launching on Tuesday"}
	require.NoError(t, svc.CreateArticle(context.Background(), a))
	assert.Equal(t, "launching-on-tuesday", a.Slug)

	err := svc.CreateArticle(context.Background(), &domain.Article{AuthorID: "user-1", Title: "Launching on Tuesday"})
	require.ErrorIs(t, err, domain.ErrDuplicateSlug)

	got, err := svc.GetArticleBySlug(context.Background(), "launching-on-tuesday")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = svc.GetArticleBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
