package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"movies-api/internal/data/entity"
	"movies-api/pkg/pagination"
)

type mongoMovieRepository struct {
	coll *mongo.Collection
	now  func() time.Time
	log  *zap.Logger
}

func NewMongoMovieRepository(coll *mongo.Collection, log *zap.Logger) MovieRepository {
	return &mongoMovieRepository{
		coll: coll,
		now:  time.Now,
		log:  log.With(zap.String("repository", "movie_mongo")),
	}
}

func (r *mongoMovieRepository) Count(ctx context.Context, filter MovieFilter) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, mongoFilter(filter))
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err), zap.Any("filter", filter))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	r.log.Debug("Movies counted", zap.Int64("total", total))
	return total, nil
}

func (r *mongoMovieRepository) Find(ctx context.Context, filter MovieFilter, sort pagination.Sort, skip, limit int) ([]*entity.Movie, error) {
	order := sort.WithTiebreak(IDField)
	opts := options.Find().
		SetSort(mongoSort(order)).
		SetSkip(int64(skip))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.coll.Find(ctx, mongoFilter(filter), opts)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("skip", skip),
			zap.Int("limit", limit),
			zap.String("sort", order.String()),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}

	movies := make([]*entity.Movie, 0, limit)
	if err := cur.All(ctx, &movies); err != nil {
		r.log.Error("Failed to decode movies", zap.Error(err))
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	for _, m := range movies {
		m.Normalize()
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("skip", skip),
		zap.Int("limit", limit),
	)
	return movies, nil
}

func (r *mongoMovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID", zap.Error(err), zap.String("movie_id", id.Hex()))
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	movie.Normalize()
	return &movie, nil
}

func (r *mongoMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	prepareInsert(movie, r.now)

	if _, err := r.coll.InsertOne(ctx, movie); err != nil {
		r.log.Error("Failed to create movie", zap.Error(err), zap.String("title", movie.Title))
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// Update replaces the stored document, keeping its _id. The caller passes
// the full merged document, so fields it cleared are removed.
func (r *mongoMovieRepository) Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	movie.UpdatedAt = r.now().UTC().Truncate(time.Millisecond)
	movie.Normalize()

	doc, err := setDocument(movie)
	if err != nil {
		return nil, fmt.Errorf("failed to encode movie: %w", err)
	}

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated entity.Movie
	err = r.coll.FindOneAndReplace(ctx, bson.D{{Key: "_id", Value: movie.ID}}, doc, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movie.ID.Hex()))
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	updated.Normalize()
	return &updated, nil
}

func (r *mongoMovieRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	var deleted entity.Movie
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", id.Hex()))
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}

	deleted.Normalize()
	return &deleted, nil
}

func (r *mongoMovieRepository) InsertMany(ctx context.Context, movies []*entity.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(movies))
	for _, m := range movies {
		prepareInsert(m, r.now)
		doc, err := setDocument(m)
		if err != nil {
			return 0, fmt.Errorf("failed to encode movie %q: %w", m.Title, err)
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "_id", Value: m.ID}}).
			SetUpdate(bson.D{{Key: "$setOnInsert", Value: doc}}).
			SetUpsert(true))
	}

	res, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		r.log.Error("Failed to insert movies", zap.Error(err), zap.Int("count", len(movies)))
		return 0, fmt.Errorf("failed to insert movies: %w", err)
	}
	return int(res.UpsertedCount), nil
}

func (r *mongoMovieRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		r.log.Error("Failed to delete movies", zap.Error(err))
		return 0, fmt.Errorf("failed to delete movies: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *mongoMovieRepository) EnsureSchema(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("createdAt_-1__id_-1"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "releaseYear", Value: -1}},
			Options: options.Index().SetName("type_1_releaseYear_-1"),
		},
		{
			Keys:    bson.D{{Key: "genres.title", Value: 1}},
			Options: options.Index().SetName("genres.title_1"),
		},
	}

	names, err := r.coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("failed to create movie indexes: %w", err)
	}

	r.log.Info("Movie indexes ready", zap.Strings("indexes", names))
	return nil
}

func (r *mongoMovieRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

func mongoFilter(f MovieFilter) bson.D {
	filter := bson.D{}
	if f.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: f.Type})
	}
	if f.Genre != "" {
		filter = append(filter, bson.E{Key: "genres.title", Value: primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(f.Genre) + "$",
			Options: "i",
		}})
	}
	if f.ReleaseYear != 0 {
		filter = append(filter, bson.E{Key: "releaseYear", Value: f.ReleaseYear})
	}
	if f.Title != "" {
		filter = append(filter, bson.E{Key: "title", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(f.Title),
			Options: "i",
		}})
	}
	return filter
}

func mongoSort(order pagination.Sort) bson.D {
	sort := make(bson.D, 0, len(order))
	for _, key := range order {
		dir := 1
		if key.Desc {
			dir = -1
		}
		sort = append(sort, bson.E{Key: key.Field, Value: dir})
	}
	return sort
}

// setDocument encodes the movie as a replacement or $setOnInsert body. The
// _id is dropped since the filter already pins it.
func setDocument(movie *entity.Movie) (bson.M, error) {
	raw, err := bson.Marshal(movie)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	return doc, nil
}
