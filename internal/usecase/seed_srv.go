package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"movies-api/internal/data/entity"
	"movies-api/internal/data/repository"
	"movies-api/pkg/apperr"
)

type SeedResult struct {
	Dropped  int64
	Inserted int
	Skipped  int
}

type SeedService interface {
	// Seed loads movies into the store. With drop set the collection is
	// emptied first; otherwise documents whose id already exists are kept.
	Seed(ctx context.Context, movies []*entity.Movie, drop bool) (*SeedResult, error)
}

type seedService struct {
	repo repository.MovieRepository
	log  *zap.Logger
}

func NewSeedService(repo repository.MovieRepository, log *zap.Logger) SeedService {
	return &seedService{
		repo: repo,
		log:  log.With(zap.String("service", "seed")),
	}
}

func (s *seedService) Seed(ctx context.Context, movies []*entity.Movie, drop bool) (*SeedResult, error) {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return nil, apperr.NewStoreError("ensure_schema", err)
	}

	result := &SeedResult{}
	if drop {
		n, err := s.repo.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("drop movies: %w", apperr.NewStoreError("delete_all", err))
		}
		result.Dropped = n
		s.log.Info("Existing movies removed", zap.Int64("count", n))
	}

	inserted, err := s.repo.InsertMany(ctx, movies)
	if err != nil {
		return nil, fmt.Errorf("insert movies: %w", apperr.NewStoreError("insert_many", err))
	}
	result.Inserted = inserted
	result.Skipped = len(movies) - inserted

	s.log.Info("Movies seeded",
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}
