package request

import (
	"net/url"
	"strings"

	"movies-api/internal/data/repository"
	"movies-api/pkg/pagination"
	"movies-api/pkg/utils"
)

// MovieListQuery is the parsed query string of GET /api/movies.
type MovieListQuery struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Sort  string `json:"sort" validate:"max=200"`
	Type  string `json:"type" validate:"max=50"`
	Genre string `json:"genre" validate:"max=100"`
	Title string `json:"title" validate:"max=200"`
	Year  int    `json:"year" validate:"omitempty,gte=1800,lte=3000"`
}

// ParseMovieListQuery reads page and limit leniently: missing or invalid
// values fall back to the policy defaults and the limit is capped.
func ParseMovieListQuery(values url.Values, policy pagination.Policy) MovieListQuery {
	req := policy.Parse(values.Get("page"), values.Get("limit"))

	return MovieListQuery{
		Page:  req.Page,
		Limit: req.Limit,
		Sort:  strings.TrimSpace(values.Get("sort")),
		Type:  strings.TrimSpace(values.Get("type")),
		Genre: strings.TrimSpace(values.Get("genre")),
		Title: strings.TrimSpace(values.Get("title")),
		Year:  utils.ParseInt(values.Get("year"), 0),
	}
}

func (q MovieListQuery) PageRequest() pagination.Request {
	return pagination.Request{Page: q.Page, Limit: q.Limit}
}

func (q MovieListQuery) Filter() repository.MovieFilter {
	return repository.MovieFilter{
		Type:        q.Type,
		Genre:       q.Genre,
		ReleaseYear: q.Year,
		Title:       q.Title,
	}
}
