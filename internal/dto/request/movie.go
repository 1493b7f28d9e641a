package request

import (
	"movies-api/internal/data/entity"
)

type MovieRequest struct {
	ContentID        string                         `json:"id,omitempty" validate:"max=100"`
	Type             string                         `json:"type,omitempty" validate:"max=50"`
	Title            string                         `json:"title" validate:"required,min=1,max=300"`
	ShortDescription string                         `json:"shortDescription,omitempty" validate:"max=1000"`
	LongDescription  string                         `json:"longDescription,omitempty" validate:"max=10000"`
	Images           []entity.ImageAsset            `json:"images,omitempty" validate:"omitempty,dive"`
	Provider         []string                       `json:"provider,omitempty" validate:"omitempty,dive,max=100"`
	ProviderMetadata map[string]any                 `json:"providerMetadata,omitempty"`
	Genres           []entity.Genre                 `json:"genres,omitempty" validate:"omitempty,dive"`
	ExternalIDs      []entity.ExternalID            `json:"externalIds,omitempty" validate:"omitempty,dive"`
	ParentalRatings  []entity.ParentalRating        `json:"parentalRatings,omitempty" validate:"omitempty,dive"`
	ReleaseYear      int                            `json:"releaseYear,omitempty" validate:"omitempty,gte=1800,lte=3000"`
	ReleaseDate      int64                          `json:"releaseDate,omitempty" validate:"gte=0"`
	Duration         int                            `json:"duration,omitempty" validate:"gte=0,lte=10000"`
	Localization     map[string]entity.Localization `json:"localization,omitempty" validate:"omitempty,dive"`
}

func (r *MovieRequest) ToEntity() *entity.Movie {
	m := &entity.Movie{
		ContentID:        r.ContentID,
		Type:             r.Type,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		Images:           r.Images,
		Provider:         r.Provider,
		ProviderMetadata: r.ProviderMetadata,
		Genres:           r.Genres,
		ExternalIDs:      r.ExternalIDs,
		ParentalRatings:  r.ParentalRatings,
		ReleaseYear:      r.ReleaseYear,
		ReleaseDate:      r.ReleaseDate,
		Duration:         r.Duration,
		Localization:     r.Localization,
	}
	m.Normalize()
	return m
}

// MovieRequestFrom lifts a stored document back into a request so a merged
// update can be validated with the same rules as a create.
func MovieRequestFrom(m *entity.Movie) *MovieRequest {
	return &MovieRequest{
		ContentID:        m.ContentID,
		Type:             m.Type,
		Title:            m.Title,
		ShortDescription: m.ShortDescription,
		LongDescription:  m.LongDescription,
		Images:           m.Images,
		Provider:         m.Provider,
		ProviderMetadata: m.ProviderMetadata,
		Genres:           m.Genres,
		ExternalIDs:      m.ExternalIDs,
		ParentalRatings:  m.ParentalRatings,
		ReleaseYear:      m.ReleaseYear,
		ReleaseDate:      m.ReleaseDate,
		Duration:         m.Duration,
		Localization:     m.Localization,
	}
}

// MovieUpdateRequest is a partial update: only fields present in the body
// are applied.
type MovieUpdateRequest struct {
	ContentID        *string                        `json:"id,omitempty" validate:"omitempty,max=100"`
	Type             *string                        `json:"type,omitempty" validate:"omitempty,max=50"`
	Title            *string                        `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	ShortDescription *string                        `json:"shortDescription,omitempty" validate:"omitempty,max=1000"`
	LongDescription  *string                        `json:"longDescription,omitempty" validate:"omitempty,max=10000"`
	Images           *[]entity.ImageAsset           `json:"images,omitempty" validate:"omitempty,dive"`
	Provider         *[]string                      `json:"provider,omitempty" validate:"omitempty,dive,max=100"`
	ProviderMetadata map[string]any                 `json:"providerMetadata,omitempty"`
	Genres           *[]entity.Genre                `json:"genres,omitempty" validate:"omitempty,dive"`
	ExternalIDs      *[]entity.ExternalID           `json:"externalIds,omitempty" validate:"omitempty,dive"`
	ParentalRatings  *[]entity.ParentalRating       `json:"parentalRatings,omitempty" validate:"omitempty,dive"`
	ReleaseYear      *int                           `json:"releaseYear,omitempty" validate:"omitempty,gte=1800,lte=3000"`
	ReleaseDate      *int64                         `json:"releaseDate,omitempty" validate:"omitempty,gte=0"`
	Duration         *int                           `json:"duration,omitempty" validate:"omitempty,gte=0,lte=10000"`
	Localization     map[string]entity.Localization `json:"localization,omitempty" validate:"omitempty,dive"`
}

// IsEmpty reports whether the body carried no known field.
func (r *MovieUpdateRequest) IsEmpty() bool {
	return r.ContentID == nil && r.Type == nil && r.Title == nil &&
		r.ShortDescription == nil && r.LongDescription == nil &&
		r.Images == nil && r.Provider == nil && r.ProviderMetadata == nil &&
		r.Genres == nil && r.ExternalIDs == nil && r.ParentalRatings == nil &&
		r.ReleaseYear == nil && r.ReleaseDate == nil && r.Duration == nil &&
		r.Localization == nil
}

// ApplyTo overwrites the fields present in the request.
func (r *MovieUpdateRequest) ApplyTo(m *entity.Movie) {
	setIf(&m.ContentID, r.ContentID)
	setIf(&m.Type, r.Type)
	setIf(&m.Title, r.Title)
	setIf(&m.ShortDescription, r.ShortDescription)
	setIf(&m.LongDescription, r.LongDescription)
	setIf(&m.Images, r.Images)
	setIf(&m.Provider, r.Provider)
	setIf(&m.Genres, r.Genres)
	setIf(&m.ExternalIDs, r.ExternalIDs)
	setIf(&m.ParentalRatings, r.ParentalRatings)
	setIf(&m.ReleaseYear, r.ReleaseYear)
	setIf(&m.ReleaseDate, r.ReleaseDate)
	setIf(&m.Duration, r.Duration)
	if r.ProviderMetadata != nil {
		m.ProviderMetadata = r.ProviderMetadata
	}
	if r.Localization != nil {
		m.Localization = r.Localization
	}
	m.Normalize()
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
