package usecase

import (
	"go.uber.org/zap"

	"movies-api/internal/data/repository"
	"movies-api/pkg/pagination"
	"movies-api/pkg/utils"
)

type Service struct {
	Movie  MovieService
	System SystemService
	Seed   SeedService

	// Policy is the page size policy GetMovies normalizes with.
	Policy pagination.Policy
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	policy := pagination.Policy{
		DefaultLimit: config.Pagination.DefaultLimit,
		MaxLimit:     config.Pagination.MaxLimit,
	}

	return &Service{
		Movie:  NewMovieService(repo.Movie, policy, log),
		System: NewSystemService(repo.Movie, config.Database.Driver, config.App.Env, log),
		Seed:   NewSeedService(repo.Movie, log),
		Policy: policy,
	}
}
