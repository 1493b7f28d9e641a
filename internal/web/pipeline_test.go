package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"movies-api/internal/data/entity"
)

func testMovies() []*entity.Movie {
	return []*entity.Movie{
		{
			Base:             entity.Base{ID: primitive.NewObjectID()},
			Title:            "With Cover",
			ShortDescription: strings.Repeat("a", 150),
			Images: []entity.ImageAsset{
				{Type: "background", URL: "https://img.example/bg.jpg"},
				{Type: "cover", URL: "https://img.example/cover.jpg"},
			},
			ReleaseDate: 816998400,
		},
		{
			Base:  entity.Base{ID: primitive.NewObjectID()},
			Title: "Bare",
		},
	}
}

func TestRender_DefaultStages(t *testing.T) {
	view := &PageView{Movies: testMovies()}

	require.NoError(t, Render(view, DefaultStages...))
	require.Len(t, view.Cards, 2)

	first := view.Cards[0]
	assert.Equal(t, "https://img.example/cover.jpg", first.ImageURL)
	assert.Equal(t, first.ImageURL, first.DataSrc)
	assert.Equal(t, blankImage, first.Src)
	assert.True(t, first.Lazy)
	assert.Equal(t, "1995", first.Year)
	assert.Equal(t, strings.Repeat("a", 100)+"...", first.Description)
	assert.Equal(t, "/movie/"+first.ID, first.Href)

	second := view.Cards[1]
	assert.Equal(t, placeholderImage, second.ImageURL)
	assert.Equal(t, "Unknown", second.Year)
	assert.Equal(t, "No description available", second.Description)

	assert.Equal(t, []string{ObserverLazyImages, ObserverRevealCards}, view.Observers)
}

func TestRender_WithoutLazyLoad(t *testing.T) {
	view := &PageView{Movies: testMovies()}

	require.NoError(t, Render(view, BuildCards, RegisterViewportObservers))

	assert.Equal(t, view.Cards[0].ImageURL, view.Cards[0].Src)
	assert.Empty(t, view.Cards[0].DataSrc)
	assert.Equal(t, []string{ObserverRevealCards}, view.Observers)
}

func TestRender_StageOrder(t *testing.T) {
	view := &PageView{Movies: testMovies()}

	err := Render(view, AttachLazyLoad, BuildCards)

	assert.ErrorIs(t, err, ErrStageOrder)
	assert.Empty(t, view.Cards, "later stages must not run")
}

func TestRender_EmptyPage(t *testing.T) {
	view := &PageView{}

	require.NoError(t, Render(view, DefaultStages...))
	assert.Empty(t, view.Cards)
	assert.Empty(t, view.Observers)
}

func TestTruncate_Runes(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 5))
	assert.Equal(t, "hé...", truncate("héllo", 2))
}
