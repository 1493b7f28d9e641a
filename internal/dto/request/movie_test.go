package request

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movies-api/internal/data/entity"
	"movies-api/internal/data/repository"
	"movies-api/pkg/pagination"
	"movies-api/pkg/utils"
)

func TestParseMovieListQuery(t *testing.T) {
	values := url.Values{
		"page":  {"2"},
		"limit": {"500"},
		"sort":  {" -releaseYear "},
		"genre": {"Drama"},
		"year":  {"1994"},
		"title": {"the"},
	}

	q := ParseMovieListQuery(values, pagination.DefaultPolicy)

	assert.Equal(t, pagination.Request{Page: 2, Limit: 100}, q.PageRequest())
	assert.Equal(t, "-releaseYear", q.Sort)
	assert.Equal(t, repository.MovieFilter{Genre: "Drama", ReleaseYear: 1994, Title: "the"}, q.Filter())
}

func TestParseMovieListQuery_InvalidValuesFallBack(t *testing.T) {
	q := ParseMovieListQuery(url.Values{"page": {"x"}, "limit": {"-1"}, "year": {"soon"}}, pagination.DefaultPolicy)

	assert.Equal(t, pagination.Request{Page: 1, Limit: 10}, q.PageRequest())
	assert.True(t, q.Filter().IsZero())
}

func TestMovieRequest_Validation(t *testing.T) {
	valid := MovieRequest{
		Title:  "Heat",
		Images: []entity.ImageAsset{{Type: "cover", URL: "https://img.test/heat.jpg"}},
		Genres: []entity.Genre{{ID: 18, Title: "Drama"}},
	}
	assert.Nil(t, utils.ValidateStruct(valid))

	invalid := MovieRequest{
		Images:      []entity.ImageAsset{{URL: "not a url"}},
		ReleaseYear: 12,
	}
	errs := utils.ValidateStruct(invalid)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "images[0].url")
	assert.Contains(t, errs, "releaseYear")
}

func TestMovieUpdateRequest_ApplyTo(t *testing.T) {
	var req MovieUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Heat (1995)","genres":[],"duration":170}`), &req))
	require.False(t, req.IsEmpty())

	movie := &entity.Movie{
		Title:       "Heat",
		Type:        "movie",
		Genres:      []entity.Genre{{Title: "Crime"}},
		ReleaseYear: 1995,
	}
	req.ApplyTo(movie)

	assert.Equal(t, "Heat (1995)", movie.Title)
	assert.Equal(t, "movie", movie.Type)
	assert.Empty(t, movie.Genres)
	assert.Equal(t, 170, movie.Duration)
	assert.Equal(t, 1995, movie.ReleaseYear)
}

func TestMovieUpdateRequest_IsEmpty(t *testing.T) {
	var req MovieUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"unknown":true}`), &req))

	assert.True(t, req.IsEmpty())
}

func TestMovieRequestFrom_RoundTrip(t *testing.T) {
	movie := &entity.Movie{Title: "Heat", Duration: 170, Provider: []string{"netflix"}}

	got := MovieRequestFrom(movie).ToEntity()

	assert.Equal(t, movie.Title, got.Title)
	assert.Equal(t, movie.Duration, got.Duration)
	assert.Equal(t, movie.Provider, got.Provider)
}
