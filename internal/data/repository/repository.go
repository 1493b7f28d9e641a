package repository

import (
	"go.uber.org/zap"

	"movies-api/internal/data/entity"
	"movies-api/pkg/database"
)

type Repository struct {
	Movie MovieRepository
}

func NewMongoRepository(db *database.Mongo, collection string, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMongoMovieRepository(db.Collection(collection), log),
	}
}

func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewPostgresMovieRepository(db, log),
	}
}

func NewMemoryRepository(log *zap.Logger, seed ...*entity.Movie) *Repository {
	return &Repository{
		Movie: NewMemoryMovieRepository(log, seed...),
	}
}
