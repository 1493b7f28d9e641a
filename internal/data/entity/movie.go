package entity

import (
	"time"
)

const (
	ImageTypeCover      = "cover"
	ImageTypeBackground = "background"
)

type ImageAsset struct {
	Type        string  `bson:"type" json:"type" yaml:"type" validate:"omitempty,max=50"`
	URL         string  `bson:"url" json:"url" yaml:"url" validate:"required,url"`
	AspectRatio float64 `bson:"aspectRatio,omitempty" json:"aspectRatio,omitempty" yaml:"aspectRatio,omitempty" validate:"gte=0"`
	Height      int     `bson:"height,omitempty" json:"height,omitempty" yaml:"height,omitempty" validate:"gte=0"`
	Width       int     `bson:"width,omitempty" json:"width,omitempty" yaml:"width,omitempty" validate:"gte=0"`
}

// Genre ids are strings or numbers depending on the upstream provider.
type Genre struct {
	ID    any    `bson:"id,omitempty" json:"id,omitempty" yaml:"id,omitempty"`
	Title string `bson:"title" json:"title" yaml:"title" validate:"required,max=100"`
}

type ExternalID struct {
	Source string `bson:"source" json:"source" yaml:"source" validate:"required,max=100"`
	ID     any    `bson:"id" json:"id" yaml:"id"`
}

type ParentalRating struct {
	Value      string   `bson:"value" json:"value" yaml:"value" validate:"required,max=20"`
	System     string   `bson:"system" json:"system" yaml:"system" validate:"required,max=50"`
	Advisories []string `bson:"advisories,omitempty" json:"advisories,omitempty" yaml:"advisories,omitempty"`
}

type Localization struct {
	Title            string       `bson:"title" json:"title" yaml:"title"`
	ShortDescription string       `bson:"shortDescription,omitempty" json:"shortDescription,omitempty" yaml:"shortDescription,omitempty"`
	LongDescription  string       `bson:"longDescription,omitempty" json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	ImageAssets      []ImageAsset `bson:"imageAssets,omitempty" json:"imageAssets,omitempty" yaml:"imageAssets,omitempty" validate:"omitempty,dive"`
}

// Movie is one document of the movie_active collection.
type Movie struct {
	Base             `bson:",inline" yaml:"-"`
	ContentID        string                  `bson:"id,omitempty" json:"id,omitempty" yaml:"id,omitempty"`
	Type             string                  `bson:"type,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Title            string                  `bson:"title" json:"title" yaml:"title"`
	ShortDescription string                  `bson:"shortDescription,omitempty" json:"shortDescription,omitempty" yaml:"shortDescription,omitempty"`
	LongDescription  string                  `bson:"longDescription,omitempty" json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	Images           []ImageAsset            `bson:"images" json:"images" yaml:"images"`
	Provider         []string                `bson:"provider" json:"provider" yaml:"provider"`
	ProviderMetadata map[string]any          `bson:"providerMetadata,omitempty" json:"providerMetadata,omitempty" yaml:"providerMetadata,omitempty"`
	Genres           []Genre                 `bson:"genres,omitempty" json:"genres,omitempty" yaml:"genres,omitempty"`
	ExternalIDs      []ExternalID            `bson:"externalIds,omitempty" json:"externalIds,omitempty" yaml:"externalIds,omitempty"`
	ParentalRatings  []ParentalRating        `bson:"parentalRatings,omitempty" json:"parentalRatings,omitempty" yaml:"parentalRatings,omitempty"`
	ReleaseYear      int                     `bson:"releaseYear,omitempty" json:"releaseYear,omitempty" yaml:"releaseYear,omitempty"`
	ReleaseDate      int64                   `bson:"releaseDate,omitempty" json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
	Duration         int                     `bson:"duration,omitempty" json:"duration,omitempty" yaml:"duration,omitempty"`
	Localization     map[string]Localization `bson:"localization,omitempty" json:"localization,omitempty" yaml:"localization,omitempty"`
}

// CoverImage returns the first image typed "cover", else the first image.
func (m *Movie) CoverImage() *ImageAsset {
	if img := m.imageOfType(ImageTypeCover); img != nil {
		return img
	}
	if len(m.Images) > 0 {
		return &m.Images[0]
	}
	return nil
}

func (m *Movie) BackgroundImage() *ImageAsset {
	return m.imageOfType(ImageTypeBackground)
}

func (m *Movie) imageOfType(t string) *ImageAsset {
	for i := range m.Images {
		if m.Images[i].Type == t {
			return &m.Images[i]
		}
	}
	return nil
}

// Year prefers ReleaseYear and falls back to the year of ReleaseDate
// (unix seconds). Zero means unknown.
func (m *Movie) Year() int {
	if m.ReleaseYear > 0 {
		return m.ReleaseYear
	}
	if m.ReleaseDate > 0 {
		return time.Unix(m.ReleaseDate, 0).UTC().Year()
	}
	return 0
}

func (m *Movie) GenreTitles() []string {
	titles := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		if g.Title != "" {
			titles = append(titles, g.Title)
		}
	}
	return titles
}

// Normalize replaces nil collections with empty ones so every store
// returns the same JSON shape.
func (m *Movie) Normalize() {
	if m.Images == nil {
		m.Images = []ImageAsset{}
	}
	if m.Provider == nil {
		m.Provider = []string{}
	}
}
