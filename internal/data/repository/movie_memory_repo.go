package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"movies-api/internal/data/entity"
	"movies-api/pkg/pagination"
)

type memoryMovieRepository struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]*entity.Movie
	now  func() time.Time
	log  *zap.Logger
}

// NewMemoryMovieRepository keeps documents in process memory. It backs the
// memory driver, the sample catalog and tests.
func NewMemoryMovieRepository(log *zap.Logger, seed ...*entity.Movie) MovieRepository {
	r := &memoryMovieRepository{
		docs: make(map[primitive.ObjectID]*entity.Movie, len(seed)),
		now:  time.Now,
		log:  log.With(zap.String("repository", "movie_memory")),
	}
	for _, m := range seed {
		c := cloneMovie(m)
		prepareInsert(c, r.now)
		r.docs[c.ID] = c
	}
	return r
}

func (r *memoryMovieRepository) Count(ctx context.Context, filter MovieFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, m := range r.docs {
		if matchMovie(m, filter) {
			n++
		}
	}
	return n, nil
}

func (r *memoryMovieRepository) Find(ctx context.Context, filter MovieFilter, sort pagination.Sort, skip, limit int) ([]*entity.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]*entity.Movie, 0, len(r.docs))
	for _, m := range r.docs {
		if matchMovie(m, filter) {
			matched = append(matched, m)
		}
	}
	r.mu.RUnlock()

	order := sort.WithTiebreak(IDField)
	slices.SortStableFunc(matched, func(a, b *entity.Movie) int {
		return compareMovies(a, b, order)
	})

	if skip < 0 {
		skip = 0
	}
	if skip >= len(matched) {
		return []*entity.Movie{}, nil
	}
	end := len(matched)
	if limit > 0 && limit < end-skip {
		end = skip + limit
	}

	out := make([]*entity.Movie, 0, end-skip)
	for _, m := range matched[skip:end] {
		out = append(out, cloneMovie(m))
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(out)),
		zap.Int("skip", skip),
		zap.Int("limit", limit),
		zap.String("sort", order.String()),
	)
	return out, nil
}

func (r *memoryMovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return cloneMovie(m), nil
}

func (r *memoryMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prepareInsert(movie, r.now)
	if _, exists := r.docs[movie.ID]; exists {
		return fmt.Errorf("failed to create movie: duplicate id %s", movie.ID.Hex())
	}
	r.docs[movie.ID] = cloneMovie(movie)
	return nil
}

func (r *memoryMovieRepository) Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.docs[movie.ID]
	if !ok {
		return nil, nil
	}

	updated := cloneMovie(movie)
	updated.CreatedAt = current.CreatedAt
	updated.Touch(r.now())
	updated.Normalize()
	r.docs[updated.ID] = updated
	return cloneMovie(updated), nil
}

func (r *memoryMovieRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	delete(r.docs, id)
	return m, nil
}

func (r *memoryMovieRepository) InsertMany(ctx context.Context, movies []*entity.Movie) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := 0
	for _, m := range movies {
		prepareInsert(m, r.now)
		if _, exists := r.docs[m.ID]; exists {
			continue
		}
		r.docs[m.ID] = cloneMovie(m)
		inserted++
	}
	return inserted, nil
}

func (r *memoryMovieRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.docs))
	clear(r.docs)
	return n, nil
}

func (r *memoryMovieRepository) EnsureSchema(context.Context) error {
	return nil
}

func (r *memoryMovieRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func matchMovie(m *entity.Movie, f MovieFilter) bool {
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.ReleaseYear != 0 && m.ReleaseYear != f.ReleaseYear {
		return false
	}
	if f.Title != "" && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.Genre != "" && !slices.ContainsFunc(m.Genres, func(g entity.Genre) bool {
		return strings.EqualFold(g.Title, f.Genre)
	}) {
		return false
	}
	return true
}

// compareMovies orders like the document stores do: byte-wise strings and
// zero values first when ascending.
func compareMovies(a, b *entity.Movie, order pagination.Sort) int {
	for _, key := range order {
		c := compareField(a, b, key.Field)
		if key.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func compareField(a, b *entity.Movie, field string) int {
	switch field {
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "type":
		return strings.Compare(a.Type, b.Type)
	case "releaseYear":
		return cmp.Compare(a.ReleaseYear, b.ReleaseYear)
	case "releaseDate":
		return cmp.Compare(a.ReleaseDate, b.ReleaseDate)
	case "duration":
		return cmp.Compare(a.Duration, b.Duration)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case IDField:
		return strings.Compare(a.ID.Hex(), b.ID.Hex())
	default:
		return 0
	}
}

func cloneMovie(m *entity.Movie) *entity.Movie {
	c := *m
	c.Images = slices.Clone(m.Images)
	c.Provider = slices.Clone(m.Provider)
	c.Genres = slices.Clone(m.Genres)
	c.ExternalIDs = slices.Clone(m.ExternalIDs)
	c.ParentalRatings = slices.Clone(m.ParentalRatings)
	return &c
}
