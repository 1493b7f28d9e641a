// Package pagination implements offset pagination: offset and page-count
// arithmetic, request normalization, page assembly over a Source and the
// navigation window rendered under a paginated list.
package pagination

import "math"

// ComputeOffset returns how many matching records precede the given page.
// Page and limit below 1 are clamped to 1, and an offset past math.MaxInt
// saturates there, so the result is never negative.
func ComputeOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// ComputeTotalPages is ceil(totalItems/limit) in integer arithmetic.
// It returns 0 for an empty collection or a non-positive limit.
func ComputeTotalPages(totalItems int64, limit int) int {
	if limit <= 0 || totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(limit) - 1) / int64(limit))
}
