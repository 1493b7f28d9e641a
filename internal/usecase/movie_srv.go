package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"movies-api/internal/data/entity"
	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/pkg/apperr"
	"movies-api/pkg/pagination"
	"movies-api/pkg/utils"
)

type MovieService interface {
	GetMovies(ctx context.Context, query request.MovieListQuery) (*pagination.Result[*entity.Movie], error)
	GetMovieByID(ctx context.Context, movieID string) (*entity.Movie, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, movieID string) (*entity.Movie, error)
}

type movieService struct {
	repo   repository.MovieRepository
	policy pagination.Policy
	log    *zap.Logger
}

func NewMovieService(
	repo repository.MovieRepository,
	policy pagination.Policy,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:   repo,
		policy: policy,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, query request.MovieListQuery) (*pagination.Result[*entity.Movie], error) {
	if errs := utils.ValidateStruct(query); errs != nil {
		return nil, apperr.NewValidationFields("Invalid query parameters", errs)
	}

	sort, err := pagination.ParseSort(query.Sort, repository.DefaultMovieSort, repository.MovieSortFields)
	if err != nil {
		return nil, apperr.NewValidationFields("Invalid query parameters", map[string]string{"sort": err.Error()})
	}

	req := s.policy.Normalize(query.PageRequest())
	result, err := pagination.FetchPage[*entity.Movie, repository.MovieFilter](ctx, s.repo, query.Filter(), sort, req)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
			zap.String("sort", sort.String()),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(result.Data)),
		zap.Int64("total", result.TotalItems),
		zap.Int("page", result.Page),
		zap.Int("limit", result.Limit),
	)
	return result, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format", zap.String("movie_id", movieID))
		return nil, err
	}

	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", apperr.NewStoreError("find_by_id", err))
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperr.ErrNotFound)
	}
	return movie, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.NewValidationFields("Failed to create movie", errs)
	}

	movie := req.ToEntity()
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", apperr.NewStoreError("create", err))
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.Hex()),
		zap.String("title", movie.Title),
	)
	return movie, nil
}

// UpdateMovie applies the fields present in req to the stored document and
// validates the merged result before writing it back.
func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*entity.Movie, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format", zap.String("movie_id", movieID))
		return nil, err
	}
	if req.IsEmpty() {
		return nil, apperr.NewValidation("No fields to update")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.NewValidationFields("Failed to update movie", errs)
	}

	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", apperr.NewStoreError("find_by_id", err))
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperr.ErrNotFound)
	}

	req.ApplyTo(movie)
	if errs := utils.ValidateStruct(request.MovieRequestFrom(movie)); errs != nil {
		return nil, apperr.NewValidationFields("Failed to update movie", errs)
	}

	updated, err := s.repo.Update(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", apperr.NewStoreError("update", err))
	}
	if updated == nil {
		// deleted between the read and the write
		return nil, fmt.Errorf("movie %s: %w", movieID, apperr.ErrNotFound)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))
	return updated, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format", zap.String("movie_id", movieID))
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete movie: %w", apperr.NewStoreError("delete", err))
	}
	if deleted == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperr.ErrNotFound)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return deleted, nil
}

// parseMovieID rejects malformed ids before any store round trip.
func parseMovieID(movieID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("movie id %q: %w", movieID, errors.Join(apperr.ErrInvalidIdentifier, err))
	}
	return id, nil
}
