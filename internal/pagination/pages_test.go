package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const E = Ellipsis

func TestGeneratePageNumbers(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		maxVisible int
		want       []PageItem
	}{
		{name: "under threshold", current: 1, total: 5, maxVisible: 7, want: []PageItem{1, 2, 3, 4, 5}},
		{name: "at threshold", current: 4, total: 7, maxVisible: 7, want: []PageItem{1, 2, 3, 4, 5, 6, 7}},
		{name: "no pages", current: 1, total: 0, maxVisible: 7, want: []PageItem{}},
		{name: "middle", current: 10, total: 20, maxVisible: 7, want: []PageItem{1, E, 8, 9, 10, 11, 12, E, 20}},
		{name: "near start", current: 1, total: 100, maxVisible: 7, want: []PageItem{1, 2, 3, 4, 5, E, 100}},
		{name: "page three near start", current: 3, total: 20, maxVisible: 7, want: []PageItem{1, 2, 3, 4, 5, E, 20}},
		{name: "near end", current: 20, total: 20, maxVisible: 7, want: []PageItem{1, E, 16, 17, 18, 19, 20}},
		{name: "default width", current: 10, total: 20, maxVisible: 0, want: []PageItem{1, E, 8, 9, 10, 11, 12, E, 20}},
		{name: "narrow width middle", current: 5, total: 10, maxVisible: 3, want: []PageItem{1, E, 5, E, 10}},
		{name: "narrow width empty window", current: 1, total: 10, maxVisible: 3, want: []PageItem{1, E, 10}},
		{name: "width one never doubles ellipsis", current: 5, total: 10, maxVisible: 1, want: []PageItem{1, E, 10}},
		{name: "width one two pages", current: 1, total: 2, maxVisible: 1, want: []PageItem{1, 2}},
		{name: "even width middle", current: 10, total: 20, maxVisible: 8, want: []PageItem{1, E, 7, 8, 9, 10, 11, 12, E, 20}},
		{name: "even width near start", current: 1, total: 20, maxVisible: 8, want: []PageItem{1, 2, 3, 4, 5, 6, E, 20}},
		{name: "even width near end", current: 20, total: 20, maxVisible: 8, want: []PageItem{1, E, 15, 16, 17, 18, 19, 20}},
		{name: "width four middle", current: 10, total: 20, maxVisible: 4, want: []PageItem{1, E, 9, 10, E, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GeneratePageNumbers(tt.current, tt.total, tt.maxVisible))
		})
	}
}

func TestGeneratePageNumbers_invariants(t *testing.T) {
	for maxVisible := 1; maxVisible <= 10; maxVisible++ {
		for total := maxVisible + 1; total <= 30; total++ {
			for current := 1; current <= total; current++ {
				got := GeneratePageNumbers(current, total, maxVisible)
				require.NotEmpty(t, got)
				require.Equal(t, PageItem(1), got[0], "current=%d total=%d max=%d", current, total, maxVisible)
				require.Equal(t, PageItem(total), got[len(got)-1], "current=%d total=%d max=%d", current, total, maxVisible)
				require.LessOrEqual(t, len(got), maxVisible+2, "current=%d total=%d max=%d: %v", current, total, maxVisible, got)

				seen := make(map[PageItem]bool)
				for i, p := range got {
					if p.IsEllipsis() {
						require.False(t, i > 0 && got[i-1].IsEllipsis(), "adjacent ellipses: %v", got)
						continue
					}
					require.False(t, seen[p], "duplicate page %d in %v", p, got)
					seen[p] = true
					if i > 0 && !got[i-1].IsEllipsis() {
						require.Greater(t, p, got[i-1], "not ascending: %v", got)
					}
				}
			}
		}
	}
}

func TestGeneratePageNumbers_middleHasEllipses(t *testing.T) {
	got := GeneratePageNumbers(10, 20, 7)
	n := 0
	for _, p := range got {
		if p.IsEllipsis() {
			n++
		}
	}
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 2)
}

func TestPageItem_JSON(t *testing.T) {
	raw, err := json.Marshal([]PageItem{1, E, 9, 10})
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"ellipsis",9,10]`, string(raw))

	var back []PageItem
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, []PageItem{1, E, 9, 10}, back)

	var bad PageItem
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &bad))
}
