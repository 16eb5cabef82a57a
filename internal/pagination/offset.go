package pagination

import "math"

// Page size defaults and limits shared by offset and cursor pagination.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MaxPage is the largest page number kept by NormalizeOffsetParams. Any page up to it
// times any limit up to MaxPageSize fits in an int.
const MaxPage = math.MaxInt / MaxPageSize

// OffsetParams holds raw, client-supplied offset pagination parameters.
// A nil field means the client did not send it.
type OffsetParams struct {
	Page  *int
	Limit *int
}

// NormalizedOffsetParams holds clamped offset pagination parameters:
// Page >= 1 and 1 <= Limit <= MaxPageSize.
type NormalizedOffsetParams struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the current page (0-based).
func (p NormalizedOffsetParams) Offset() int {
	return CalculateOffset(p.Page, p.Limit)
}

// NormalizeOffsetParams clamps params to valid ranges. A missing page becomes 1,
// a missing limit becomes DefaultPageSize. Out of range values are clamped, never rejected.
func NormalizeOffsetParams(params OffsetParams) NormalizedOffsetParams {
	page := DefaultPage
	if params.Page != nil {
		page = clampPage(*params.Page)
	}
	return NormalizedOffsetParams{
		Page:  page,
		Limit: normalizeLimit(params.Limit),
	}
}

func clampPage(page int) int {
	return min(MaxPage, max(1, page))
}

func normalizeLimit(limit *int) int {
	l := DefaultPageSize
	if limit != nil {
		l = *limit
	}
	return min(MaxPageSize, max(1, l))
}

// CalculateOffset returns (page - 1) * limit. Pages below 1 give 0, and a product
// that does not fit in an int saturates at math.MaxInt.
func CalculateOffset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	return mulSat(page-1, limit)
}

// mulSat multiplies two non-negative ints, saturating at math.MaxInt.
func mulSat(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

// OffsetResult is one page of an offset-paginated list.
// swagger:model OffsetResult
type OffsetResult[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// BuildOffsetResult shapes an already-fetched page and its total count.
// HasMore is Page < TotalPages; an empty total always yields TotalPages 0 and HasMore false.
func BuildOffsetResult[T any](items []T, total int, params NormalizedOffsetParams) OffsetResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := TotalPages(total, params.Limit)
	return OffsetResult[T]{
		Items:      items,
		Total:      max(0, total),
		Page:       params.Page,
		TotalPages: totalPages,
		HasMore:    params.Page < totalPages,
	}
}

// TotalPages returns ceil(total / limit), or 0 when total or limit is not positive.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Info is the display-oriented summary of an offset-paginated list.
// StartIndex and EndIndex are 1-based and both 0 for an empty list.
// swagger:model PaginationInfo
type Info struct {
	CurrentPage     int  `json:"current_page"`
	TotalPages      int  `json:"total_pages"`
	TotalItems      int  `json:"total_items"`
	ItemsPerPage    int  `json:"items_per_page"`
	HasPreviousPage bool `json:"has_previous_page"`
	HasNextPage     bool `json:"has_next_page"`
	StartIndex      int  `json:"start_index"`
	EndIndex        int  `json:"end_index"`
}

// GetPaginationInfo computes Info for the given total, page and limit.
// The page is clamped to [1, MaxPage] first.
func GetPaginationInfo(total, page, limit int) Info {
	page = clampPage(page)
	totalPages := TotalPages(total, limit)
	startIndex := 0
	if total > 0 {
		startIndex = CalculateOffset(page, limit)
		if startIndex < math.MaxInt {
			startIndex++
		}
	}
	return Info{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      total,
		ItemsPerPage:    limit,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
		StartIndex:      startIndex,
		EndIndex:        max(0, min(mulSat(page, max(0, limit)), total)),
	}
}
