package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"movies-api/pkg/pagination"
)

func TestComputeOffset(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		want        int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"third page of 25", 3, 10, 20},
		{"page zero clamps", 0, 10, 0},
		{"negative page clamps", -4, 10, 0},
		{"zero limit clamps to one", 5, 0, 4},
		{"negative limit clamps to one", 3, -2, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pagination.ComputeOffset(tc.page, tc.limit))
		})
	}
}

func TestComputeOffset_FormulaAndMonotonic(t *testing.T) {
	for limit := 1; limit <= 25; limit++ {
		prev := -1
		for page := 1; page <= 50; page++ {
			got := pagination.ComputeOffset(page, limit)
			assert.Equal(t, (page-1)*limit, got)
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	}
}

func TestComputeOffset_SaturatesAtMaxInt(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		want        int
	}{
		{"max page", math.MaxInt, 10, math.MaxInt},
		{"max page and limit", math.MaxInt, math.MaxInt, math.MaxInt},
		{"just past the edge", math.MaxInt/10 + 2, 10, math.MaxInt},
		{"last exact page", math.MaxInt/10 + 1, 10, math.MaxInt / 10 * 10},
		{"limit one", math.MaxInt, 1, math.MaxInt - 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pagination.ComputeOffset(tc.page, tc.limit)
			assert.GreaterOrEqual(t, got, 0)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeTotalPages(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"empty", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single item", 1, 10, 1},
		{"limit one", 7, 1, 7},
		{"zero limit", 10, 0, 0},
		{"negative total", -5, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pagination.ComputeTotalPages(tc.total, tc.limit))
		})
	}
}

func TestComputeTotalPages_CeilingBounds(t *testing.T) {
	for total := int64(0); total <= 200; total++ {
		for limit := 1; limit <= 30; limit++ {
			pages := pagination.ComputeTotalPages(total, limit)

			assert.GreaterOrEqual(t, int64(pages*limit), total)
			if total > 0 {
				assert.Less(t, int64((pages-1)*limit), total)
			} else {
				assert.Zero(t, pages)
			}
		}
	}
}
