package pagination

// Result is one page of an offset-paginated collection.
type Result[T any] struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	Data       []T   `json:"data"`
}

// NewResult assembles a page. Data is never nil so it encodes as [].
func NewResult[T any](data []T, req Request, totalItems int64) *Result[T] {
	if data == nil {
		data = []T{}
	}
	return &Result[T]{
		Page:       req.Page,
		Limit:      req.Limit,
		TotalItems: totalItems,
		TotalPages: ComputeTotalPages(totalItems, req.Limit),
		Data:       data,
	}
}

// FirstItem is the 1-based position of the first record on the page, 0 when empty.
func (r *Result[T]) FirstItem() int64 {
	if len(r.Data) == 0 {
		return 0
	}
	return int64(ComputeOffset(r.Page, r.Limit)) + 1
}

// LastItem is the 1-based position of the last record on the page, 0 when empty.
func (r *Result[T]) LastItem() int64 {
	if len(r.Data) == 0 {
		return 0
	}
	return int64(ComputeOffset(r.Page, r.Limit) + len(r.Data))
}

// Map converts the page data while keeping the pagination metadata.
func Map[T, U any](r *Result[T], fn func(T) U) *Result[U] {
	out := make([]U, len(r.Data))
	for i, item := range r.Data {
		out[i] = fn(item)
	}
	return &Result[U]{
		Page:       r.Page,
		Limit:      r.Limit,
		TotalItems: r.TotalItems,
		TotalPages: r.TotalPages,
		Data:       out,
	}
}
