package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"openlaunch/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var articleRowColumns = []string{"id", "author_id", "title", "slug", "summary", "body", "created_at", "updated_at"}

func TestArticleRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO articles \(author_id, title, slug, summary, body, created_at, updated_at\)`).
			WithArgs("user-1", "Hello", "hello", "sum", "body", now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a-1"))

		a := &domain.Article{AuthorID: "user-1", Title: "Hello", Slug: "hello", Summary: "sum", Body: "body", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, NewArticleRepository(db).Create(ctx, a))
		require.Equal(t, "a-1", a.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate slug", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO articles`).WillReturnError(&pq.Error{Code: pgUniqueViolation})
		err = NewArticleRepository(db).Create(ctx, &domain.Article{Title: "Hello", Slug: "hello"})
		require.ErrorIs(t, err, domain.ErrDuplicateSlug)
	})
}

func TestArticleRepository_GetBySlug_notFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM articles WHERE slug = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := NewArticleRepository(db).GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_ListFeed(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		after  *domain.ArticleCursor
		mock   func(mock sqlmock.Sqlmock)
		wantID []string
	}{
		{
			name: "first page",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM articles ORDER BY created_at DESC, id DESC LIMIT 3`).
					WillReturnRows(sqlmock.NewRows(articleRowColumns).
						AddRow("a-3", "user-1", "C", "c", "", "", t1, t1).
						AddRow("a-2", "user-1", "B", "b", "", "", t2, t2))
			},
			wantID: []string{"a-3", "a-2"},
		},
		{
			name:  "after cursor",
			after: &domain.ArticleCursor{V: domain.ArticleCursorVersion, CreatedAt: t1, ID: "a-3"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM articles WHERE \(created_at, id\) < \(\$1, \$2\) ORDER BY created_at DESC, id DESC LIMIT 3`).
					WithArgs(t1, "a-3").
					WillReturnRows(sqlmock.NewRows(articleRowColumns).
						AddRow("a-2", "user-1", "B", "b", "", "", t2, t2))
			},
			wantID: []string{"a-2"},
		},
		{
			name: "empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM articles`).
					WillReturnRows(sqlmock.NewRows(articleRowColumns))
			},
			wantID: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewArticleRepository(db).ListFeed(ctx, tt.after, 3)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			require.Equal(t, tt.wantID, ids)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
