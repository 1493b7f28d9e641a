package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movies-api/internal/dto/request"
	"movies-api/internal/seed"
	"movies-api/pkg/utils"
)

func TestLoad(t *testing.T) {
	movies, err := seed.Load()
	require.NoError(t, err)
	require.Len(t, movies, 13)

	first := movies[0]
	assert.Equal(t, "67ff7cc54ec9a97921ff1e4e", first.ID.Hex())
	assert.Equal(t, "Toy Story", first.Title)
	assert.Equal(t, "cover", first.CoverImage().Type)
	assert.NotNil(t, first.BackgroundImage())
	assert.Contains(t, first.GenreTitles(), "Animation")
	assert.Equal(t, 1995, first.Year())

	for i := 1; i < len(movies); i++ {
		assert.True(t, movies[i].CreatedAt.Before(movies[i-1].CreatedAt), "entry %d must be older than %d", i, i-1)
	}
}

func TestLoad_EveryEntryIsValid(t *testing.T) {
	movies, err := seed.Load()
	require.NoError(t, err)

	for _, m := range movies {
		assert.Nil(t, utils.ValidateStruct(request.MovieRequestFrom(m)), m.Title)
		assert.NotNil(t, m.Images, m.Title)
	}
}

func TestLoad_ReturnsFreshCopies(t *testing.T) {
	a := seed.MustLoad()
	b := seed.MustLoad()

	a[0].Title = "changed"
	assert.Equal(t, "Toy Story", b[0].Title)
}

func TestParse_Errors(t *testing.T) {
	_, err := seed.Parse([]byte("- _id: nope\n  title: x\n"))
	assert.ErrorContains(t, err, "invalid _id")

	dup := "- _id: 67ff7cc54ec9a97921ff1e4e\n  title: a\n- _id: 67ff7cc54ec9a97921ff1e4e\n  title: b\n"
	_, err = seed.Parse([]byte(dup))
	assert.ErrorContains(t, err, "duplicate _id")

	_, err = seed.Parse([]byte("title: [unclosed"))
	assert.Error(t, err)
}
