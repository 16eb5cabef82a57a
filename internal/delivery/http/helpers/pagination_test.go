package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOffsetParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 20},
		{name: "explicit", query: "?page=3&limit=50", wantPage: 3, wantLimit: 50},
		{name: "page_size alias", query: "?page=2&page_size=5", wantPage: 2, wantLimit: 5},
		{name: "limit wins over page_size", query: "?limit=7&page_size=5", wantPage: 1, wantLimit: 7},
		{name: "non-numeric treated as absent", query: "?page=abc&limit=xyz", wantPage: 1, wantLimit: 20},
		{name: "zero page collapses to one", query: "?page=0", wantPage: 1, wantLimit: 20},
		{name: "zero limit clamps to one", query: "?limit=0", wantPage: 1, wantLimit: 1},
		{name: "huge limit clamps to max", query: "?limit=1000", wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://test/projects"+tt.query, nil)
			got := ParseOffsetParams(req)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestParseCursorParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://test/articles?cursor=abc%3D&limit=5", nil)
	got := ParseCursorParams(req)
	assert.Equal(t, "abc=", got.Cursor)
	assert.Equal(t, 5, got.Limit)

	req = httptest.NewRequest(http.MethodGet, "http://test/articles", nil)
	got = ParseCursorParams(req)
	assert.Equal(t, "", got.Cursor)
	assert.Equal(t, 20, got.Limit)
}

func TestParseCursorParams_plusSign(t *testing.T) {
	for _, query := range []string{"?cursor=a%2Bb%2Fc%3D%3D", "?cursor=a+b/c=="} {
		t.Run(query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://test/articles"+query, nil)
			assert.Equal(t, "a+b/c==", ParseCursorParams(req).Cursor)
		})
	}
}
