package pagination

import (
	"encoding/base64"
	"encoding/json"
)

// CursorParams holds raw cursor pagination parameters. An empty Cursor means the first page.
type CursorParams struct {
	Cursor string
	Limit  *int
}

// NormalizedCursorParams holds the cursor as received and a clamped limit.
type NormalizedCursorParams struct {
	Cursor string
	Limit  int
}

// NormalizeCursorParams clamps the limit exactly like NormalizeOffsetParams.
// The cursor is passed through undecoded.
func NormalizeCursorParams(params CursorParams) NormalizedCursorParams {
	return NormalizedCursorParams{
		Cursor: params.Cursor,
		Limit:  normalizeLimit(params.Limit),
	}
}

// EncodeCursor returns base64(json(data)). Key order is whatever encoding/json emits,
// which is sorted for maps. A payload that cannot be marshaled yields "", which
// DecodeCursor treats as no cursor.
func EncodeCursor(data map[string]any) string {
	return EncodeCursorValue(data)
}

// EncodeCursorValue is EncodeCursor for any JSON-serializable value, typically a
// per-list cursor struct.
func EncodeCursorValue(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeCursor reverses EncodeCursor. It returns nil for invalid base64, invalid JSON
// or JSON that is not an object; callers restart from the first page in that case.
func DecodeCursor(cursor string) map[string]any {
	m, ok := DecodeCursorValue[map[string]any](cursor)
	if !ok || m == nil {
		return nil
	}
	return m
}

// DecodeCursorValue decodes a cursor produced by EncodeCursorValue into C.
// ok is false when the cursor is malformed; it never panics.
func DecodeCursorValue[C any](cursor string) (value C, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		var zero C
		return zero, false
	}
	return value, true
}

// Identifier is implemented by list items that carry a unique ID.
type Identifier interface {
	GetID() string
}

// CursorResult is one page of a cursor-paginated list.
// NextCursor is non-nil iff HasMore.
// swagger:model CursorResult
type CursorResult[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// BuildCursorResult shapes rows fetched with limit+1 (over-fetch by one). The extra
// row, if present, is dropped and the ID of the last kept item becomes NextCursor.
// Exactly limit rows means no more pages: callers that do not over-fetch get HasMore false.
func BuildCursorResult[T Identifier](items []T, limit int) CursorResult[T] {
	return BuildCursorResultFunc(items, limit, func(item T) string { return item.GetID() })
}

// BuildCursorResultFunc is BuildCursorResult with the cursor of the last kept item
// computed by cursorOf.
func BuildCursorResultFunc[T any](items []T, limit int, cursorOf func(T) string) CursorResult[T] {
	if limit < 1 {
		limit = 1
	}
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}
	if items == nil {
		items = []T{}
	}
	var next *string
	if hasMore {
		c := cursorOf(items[len(items)-1])
		next = &c
	}
	return CursorResult[T]{
		Items:      items,
		NextCursor: next,
		HasMore:    hasMore,
	}
}
