package response

import "movies-api/internal/data/entity"

// MovieListResponse documents GET /api/movies.
type MovieListResponse = PageResponse[*entity.Movie]

// MovieResponse documents the single-movie envelope.
type MovieResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message,omitempty" example:"Movie created successfully"`
	Data    *entity.Movie `json:"data"`
}

// ErrorResponse documents the error envelope.
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"Invalid movie ID format"`
	Error   map[string]string `json:"error,omitempty"`
}
