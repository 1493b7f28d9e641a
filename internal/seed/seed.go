// Package seed holds the embedded sample catalog.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"

	"movies-api/internal/data/entity"
)

//go:embed sample_movies.yaml
var sampleMovies []byte

// catalogEpoch is the createdAt of the first sample entry; later entries are
// one minute older each, so the default newest-first sort keeps file order.
var catalogEpoch = time.Date(2025, time.April, 16, 9, 0, 0, 0, time.UTC)

type record struct {
	ID           string `yaml:"_id"`
	entity.Movie `yaml:",inline"`
}

// Load parses the sample catalog. Every call returns fresh documents.
func Load() ([]*entity.Movie, error) {
	return Parse(sampleMovies)
}

func Parse(data []byte) ([]*entity.Movie, error) {
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse sample catalog: %w", err)
	}

	movies := make([]*entity.Movie, 0, len(records))
	seen := make(map[primitive.ObjectID]struct{}, len(records))
	for i := range records {
		rec := &records[i]

		id, err := primitive.ObjectIDFromHex(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("sample movie %d (%q): invalid _id %q: %w", i, rec.Title, rec.ID, err)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("sample movie %d (%q): duplicate _id %s", i, rec.Title, rec.ID)
		}
		seen[id] = struct{}{}

		m := rec.Movie
		m.ID = id
		m.CreatedAt = catalogEpoch.Add(-time.Duration(i) * time.Minute)
		m.UpdatedAt = m.CreatedAt
		m.Normalize()
		movies = append(movies, &m)
	}
	return movies, nil
}

// MustLoad is Load for callers that cannot continue without the catalog.
func MustLoad() []*entity.Movie {
	movies, err := Load()
	if err != nil {
		panic(err)
	}
	return movies
}
