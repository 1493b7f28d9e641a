package response

import "movies-api/pkg/pagination"

// PageResponse is the list envelope:
// {success, page, limit, totalItems, totalPages, data}.
type PageResponse[T any] struct {
	Success bool `json:"success"`
	*pagination.Result[T]
}

func NewPageResponse[T any](result *pagination.Result[T]) PageResponse[T] {
	return PageResponse[T]{Success: true, Result: result}
}
