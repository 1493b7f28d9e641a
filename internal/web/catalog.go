package web

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"movies-api/internal/data/entity"
	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/internal/seed"
	"movies-api/internal/usecase"
	"movies-api/pkg/apperr"
	"movies-api/pkg/pagination"
)

// FallbackTotal counts reads served from the sample catalog.
var FallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "movies_api",
	Subsystem: "web",
	Name:      "sample_fallback_total",
	Help:      "Pages served from the sample catalog because the store was unavailable.",
}, []string{"op"})

// Listing is one page of movies plus where it came from.
type Listing struct {
	*pagination.Result[*entity.Movie]
	Sample bool
}

// Entry is a single movie plus where it came from.
type Entry struct {
	Movie  *entity.Movie
	Sample bool
}

// Catalog is what the pages read movies from.
type Catalog interface {
	List(ctx context.Context, query request.MovieListQuery) (*Listing, error)
	Get(ctx context.Context, id string) (*Entry, error)
}

type serviceCatalog struct {
	movies usecase.MovieService
	sample bool
}

// NewServiceCatalog reads straight from a movie service.
func NewServiceCatalog(movies usecase.MovieService) Catalog {
	return &serviceCatalog{movies: movies}
}

// NewSampleCatalog serves the embedded sample movies from memory with the
// same paging, sorting and filtering rules as the store.
func NewSampleCatalog(policy pagination.Policy, log *zap.Logger) (Catalog, error) {
	movies, err := seed.Load()
	if err != nil {
		return nil, fmt.Errorf("sample catalog: %w", err)
	}
	repo := repository.NewMemoryMovieRepository(log, movies...)
	return &serviceCatalog{
		movies: usecase.NewMovieService(repo, policy, log),
		sample: true,
	}, nil
}

func (c *serviceCatalog) List(ctx context.Context, query request.MovieListQuery) (*Listing, error) {
	result, err := c.movies.GetMovies(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Listing{Result: result, Sample: c.sample}, nil
}

func (c *serviceCatalog) Get(ctx context.Context, id string) (*Entry, error) {
	movie, err := c.movies.GetMovieByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Entry{Movie: movie, Sample: c.sample}, nil
}

// FallbackCatalog reads from primary and switches to sample only when the
// primary store is unavailable. Not-found and invalid input are returned
// as they are.
type FallbackCatalog struct {
	primary Catalog
	sample  Catalog
	log     *zap.Logger
}

func NewFallbackCatalog(primary, sample Catalog, log *zap.Logger) *FallbackCatalog {
	return &FallbackCatalog{
		primary: primary,
		sample:  sample,
		log:     log.With(zap.String("component", "catalog")),
	}
}

func (c *FallbackCatalog) List(ctx context.Context, query request.MovieListQuery) (*Listing, error) {
	listing, err := c.primary.List(ctx, query)
	if !c.shouldFallback(err) {
		return listing, err
	}

	c.log.Warn("Store unavailable, serving sample catalog", zap.Error(err), zap.Int("page", query.Page))
	FallbackTotal.WithLabelValues("list").Inc()
	return c.sample.List(ctx, query)
}

func (c *FallbackCatalog) Get(ctx context.Context, id string) (*Entry, error) {
	entry, err := c.primary.Get(ctx, id)
	if !c.shouldFallback(err) {
		return entry, err
	}

	c.log.Warn("Store unavailable, serving sample movie", zap.Error(err), zap.String("movie_id", id))
	FallbackTotal.WithLabelValues("get").Inc()
	return c.sample.Get(ctx, id)
}

func (c *FallbackCatalog) shouldFallback(err error) bool {
	return err != nil && c.sample != nil && errors.Is(err, apperr.ErrStoreUnavailable)
}
