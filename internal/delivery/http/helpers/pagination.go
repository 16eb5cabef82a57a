package helpers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"openlaunch/internal/pagination"
)

// Query parameter names accepted by paginated list endpoints. page_size is kept as an
// alias of limit for older clients; limit wins when both are present.
const (
	QueryPage     = "page"
	QueryLimit    = "limit"
	QueryPageSize = "page_size"
	QueryCursor   = "cursor"
)

// ParseOffsetParams reads page and limit from the query string and normalizes them.
// Missing or non-numeric values are treated as absent and fall back to defaults.
func ParseOffsetParams(r *http.Request) pagination.NormalizedOffsetParams {
	q := r.URL.Query()
	return pagination.NormalizeOffsetParams(pagination.OffsetParams{
		Page:  queryInt(q, QueryPage),
		Limit: parseLimit(q),
	})
}

// ParseCursorParams reads cursor and limit from the query string and normalizes them.
// Cursors never contain spaces, so a space is read back as the '+' that a client
// forgot to URL-encode.
func ParseCursorParams(r *http.Request) pagination.NormalizedCursorParams {
	q := r.URL.Query()
	return pagination.NormalizeCursorParams(pagination.CursorParams{
		Cursor: strings.ReplaceAll(q.Get(QueryCursor), " ", "+"),
		Limit:  parseLimit(q),
	})
}

func parseLimit(q url.Values) *int {
	if v := queryInt(q, QueryLimit); v != nil {
		return v
	}
	return queryInt(q, QueryPageSize)
}

func queryInt(q url.Values, key string) *int {
	s := q.Get(key)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
