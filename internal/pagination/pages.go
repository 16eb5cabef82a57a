package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultMaxVisiblePages is the page strip width used when none is given.
const DefaultMaxVisiblePages = 7

// PageItem is one entry of a page-number strip: a 1-based page number or Ellipsis.
type PageItem int

// Ellipsis marks a collapsed run of pages.
const Ellipsis PageItem = 0

const ellipsisJSON = `"ellipsis"`

// IsEllipsis reports whether the item is the collapsed-range marker.
func (p PageItem) IsEllipsis() bool { return p == Ellipsis }

// MarshalJSON renders page numbers as numbers and Ellipsis as "ellipsis".
func (p PageItem) MarshalJSON() ([]byte, error) {
	if p.IsEllipsis() {
		return []byte(ellipsisJSON), nil
	}
	return []byte(strconv.Itoa(int(p))), nil
}

// UnmarshalJSON accepts a page number or the "ellipsis" string.
func (p *PageItem) UnmarshalJSON(b []byte) error {
	if string(b) == ellipsisJSON {
		*p = Ellipsis
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("page item: %w", err)
	}
	*p = PageItem(n)
	return nil
}

// GeneratePageNumbers builds a compact strip such as 1 … 4 5 6 7 8 … 20 for a
// pagination control. The first and last pages are always shown once totalPages
// exceeds maxVisible, the strip holds at most maxVisible+2 entries and no page
// number repeats.
func GeneratePageNumbers(currentPage, totalPages, maxVisible int) []PageItem {
	if totalPages < 1 {
		return []PageItem{}
	}
	if maxVisible < 1 {
		maxVisible = DefaultMaxVisiblePages
	}
	if totalPages <= maxVisible {
		pages := make([]PageItem, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, PageItem(p))
		}
		return pages
	}

	half := maxVisible / 2
	start := max(2, currentPage-half+1)
	// (maxVisible-1)/2 equals half for odd widths. Even widths take one page less on
	// the right so the strip stays within maxVisible+2 entries.
	end := min(totalPages-1, currentPage+(maxVisible-1)/2-1)
	if currentPage <= half {
		end = maxVisible - 2
	}
	if currentPage > totalPages-half {
		start = totalPages - maxVisible + 3
	}

	pages := make([]PageItem, 0, maxVisible+2)
	pages = append(pages, 1)
	if start > end {
		// Narrow strips can leave no window at all; collapse everything in between once.
		if totalPages > 2 {
			pages = append(pages, Ellipsis)
		}
		return append(pages, PageItem(totalPages))
	}
	if start > 2 {
		pages = append(pages, Ellipsis)
	}
	for p := start; p <= end; p++ {
		pages = append(pages, PageItem(p))
	}
	if end < totalPages-1 {
		pages = append(pages, Ellipsis)
	}
	return append(pages, PageItem(totalPages))
}
