package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMovie_CoverImage(t *testing.T) {
	m := Movie{Images: []ImageAsset{
		{Type: "poster", URL: "https://img.test/poster.jpg"},
		{Type: ImageTypeBackground, URL: "https://img.test/bg.jpg"},
		{Type: ImageTypeCover, URL: "https://img.test/cover.jpg"},
	}}

	assert.Equal(t, "https://img.test/cover.jpg", m.CoverImage().URL)
	assert.Equal(t, "https://img.test/bg.jpg", m.BackgroundImage().URL)

	m.Images = m.Images[:1]
	assert.Equal(t, "https://img.test/poster.jpg", m.CoverImage().URL)
	assert.Nil(t, m.BackgroundImage())

	assert.Nil(t, (&Movie{}).CoverImage())
}

func TestMovie_Year(t *testing.T) {
	assert.Equal(t, 1999, (&Movie{ReleaseYear: 1999, ReleaseDate: 1700000000}).Year())
	assert.Equal(t, 2023, (&Movie{ReleaseDate: 1700000000}).Year())
	assert.Zero(t, (&Movie{}).Year())
}

func TestMovie_GenreTitles(t *testing.T) {
	m := Movie{Genres: []Genre{{ID: 1, Title: "Drama"}, {ID: "x"}, {Title: "Crime"}}}

	assert.Equal(t, []string{"Drama", "Crime"}, m.GenreTitles())
	assert.Empty(t, (&Movie{}).GenreTitles())
}

func TestBase_Touch(t *testing.T) {
	var b Base
	first := time.Date(2024, 1, 2, 3, 4, 5, 123456789, time.UTC)
	b.Touch(first)

	assert.Equal(t, first.Truncate(time.Millisecond), b.CreatedAt)
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)

	b.Touch(first.Add(time.Hour))
	assert.Equal(t, first.Truncate(time.Millisecond), b.CreatedAt)
	assert.Equal(t, first.Add(time.Hour).Truncate(time.Millisecond), b.UpdatedAt)
}

func TestMovie_JSONUsesHexID(t *testing.T) {
	id := primitive.NewObjectID()
	m := Movie{Base: Base{ID: id}, Title: "Heat"}
	m.Normalize()

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, id.Hex(), out["_id"])
	assert.Equal(t, []any{}, out["images"])
}

func TestMovie_BSONInlinesBase(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(Movie{Base: Base{ID: id}, Title: "Heat", ReleaseYear: 1995})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, id, doc["_id"])
	assert.Equal(t, "Heat", doc["title"])
	assert.EqualValues(t, 1995, doc["releaseYear"])
	assert.NotContains(t, doc, "Base")
}
