package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleTag struct {
	Title string `json:"title" validate:"required"`
}

type sampleRequest struct {
	Title    string      `json:"title" validate:"required,max=10"`
	Type     string      `json:"type" validate:"omitempty,oneof=movie series"`
	Duration int         `json:"duration" validate:"gte=0"`
	Tags     []sampleTag `json:"tags" validate:"dive"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleRequest{Title: "Heat", Type: "movie"}))

	errs := ValidateStruct(sampleRequest{
		Title:    "",
		Type:     "podcast",
		Duration: -5,
		Tags:     []sampleTag{{Title: ""}},
	})

	assert.Equal(t, map[string]string{
		"title":         "This field is required",
		"type":          "Must be one of: movie, series",
		"duration":      "Must be greater than or equal to 0",
		"tags[0].title": "This field is required",
	}, errs)
}

func TestValidateStruct_LengthMessages(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Title: "Much too long a title"})

	assert.Equal(t, "Maximum length is 10", errs["title"])
}
