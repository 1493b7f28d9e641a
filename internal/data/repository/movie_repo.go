package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"movies-api/internal/data/entity"
	"movies-api/pkg/pagination"
)

const (
	// IDField is the unique key appended to every ordering.
	IDField = "_id"
	// DefaultMovieSort lists the newest documents first.
	DefaultMovieSort = "-createdAt"
)

// MovieSortFields are the keys accepted by the sort query parameter.
var MovieSortFields = []string{
	"title", "type", "releaseYear", "releaseDate", "duration", "createdAt", "updatedAt", IDField,
}

// MovieFilter narrows a listing. Zero fields do not filter.
//   - Type matches exactly.
//   - Genre matches any genre title, ignoring case.
//   - ReleaseYear matches the releaseYear field exactly.
//   - Title matches a case-insensitive substring of the title.
type MovieFilter struct {
	Type        string
	Genre       string
	ReleaseYear int
	Title       string
}

func (f MovieFilter) IsZero() bool {
	return f == MovieFilter{}
}

type MovieRepository interface {
	// Listing
	Count(ctx context.Context, filter MovieFilter) (int64, error)
	Find(ctx context.Context, filter MovieFilter, sort pagination.Sort, skip, limit int) ([]*entity.Movie, error)

	// CRUD Movie. Lookups of an absent id return a nil movie and no error.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error)

	// Bulk, used by the seeder. InsertMany skips ids that already exist and
	// returns how many documents were written.
	InsertMany(ctx context.Context, movies []*entity.Movie) (int, error)
	DeleteAll(ctx context.Context) (int64, error)

	// EnsureSchema creates the indexes (or table) listings rely on.
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
}

var _ pagination.Source[*entity.Movie, MovieFilter] = MovieRepository(nil)

func prepareInsert(movie *entity.Movie, now func() time.Time) {
	if movie.ID.IsZero() {
		movie.ID = primitive.NewObjectID()
	}
	movie.Touch(now())
	movie.Normalize()
}
