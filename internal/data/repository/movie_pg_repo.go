package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"movies-api/internal/data/entity"
	"movies-api/pkg/database"
	"movies-api/pkg/pagination"
)

// Movies live as JSONB documents keyed by the ObjectID hex, so ids and the
// document shape are the same as on the Mongo driver.
var pgSchema = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id         text PRIMARY KEY,
		doc        jsonb NOT NULL,
		created_at timestamptz NOT NULL,
		updated_at timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS movies_created_at_id_idx ON movies (created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS movies_doc_type_idx ON movies ((doc->>'type'))`,
}

// pgSortExpr maps sort keys onto ORDER BY expressions. Text compares
// byte-wise to match the Mongo driver.
var pgSortExpr = map[string]string{
	"title":       `(doc->>'title') COLLATE "C"`,
	"type":        `(doc->>'type') COLLATE "C"`,
	"releaseYear": `(doc->>'releaseYear')::int`,
	"releaseDate": `(doc->>'releaseDate')::bigint`,
	"duration":    `(doc->>'duration')::int`,
	"createdAt":   `created_at`,
	"updatedAt":   `updated_at`,
	IDField:       `id`,
}

const pgColumns = `id, doc, created_at, updated_at`

type pgMovieRepository struct {
	db  database.PgxIface
	now func() time.Time
	log *zap.Logger
}

func NewPostgresMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &pgMovieRepository{
		db:  db,
		now: time.Now,
		log: log.With(zap.String("repository", "movie_postgres")),
	}
}

func (r *pgMovieRepository) Count(ctx context.Context, filter MovieFilter) (int64, error) {
	where, args := pgWhere(filter)

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`+where, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err), zap.Any("filter", filter))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	r.log.Debug("Movies counted", zap.Int64("total", total))
	return total, nil
}

func (r *pgMovieRepository) Find(ctx context.Context, filter MovieFilter, sort pagination.Sort, skip, limit int) ([]*entity.Movie, error) {
	order := sort.WithTiebreak(IDField)
	orderBy, err := pgOrderBy(order)
	if err != nil {
		return nil, err
	}

	where, args := pgWhere(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + pgColumns + ` FROM movies`)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(orderBy)
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", len(args))
	}
	args = append(args, skip)
	fmt.Fprintf(&queryBuilder, " OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("skip", skip),
			zap.Int("limit", limit),
			zap.String("sort", order.String()),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0, limit)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("skip", skip),
		zap.Int("limit", limit),
	)
	return movies, nil
}

func (r *pgMovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	row := r.db.QueryRow(ctx, `SELECT `+pgColumns+` FROM movies WHERE id = $1`, id.Hex())

	movie, err := scanMovie(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID", zap.Error(err), zap.String("movie_id", id.Hex()))
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	return movie, nil
}

func (r *pgMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	prepareInsert(movie, r.now)

	doc, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("failed to encode movie: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO movies (id, doc, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		movie.ID.Hex(), doc, movie.CreatedAt, movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create movie", zap.Error(err), zap.String("title", movie.Title))
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

func (r *pgMovieRepository) Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	movie.UpdatedAt = r.now().UTC().Truncate(time.Millisecond)
	movie.Normalize()

	doc, err := json.Marshal(movie)
	if err != nil {
		return nil, fmt.Errorf("failed to encode movie: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`UPDATE movies SET doc = $2, updated_at = $3 WHERE id = $1 RETURNING `+pgColumns,
		movie.ID.Hex(), doc, movie.UpdatedAt,
	)
	updated, err := scanMovie(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movie.ID.Hex()))
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	return updated, nil
}

func (r *pgMovieRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM movies WHERE id = $1 RETURNING `+pgColumns, id.Hex())

	deleted, err := scanMovie(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", id.Hex()))
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}
	return deleted, nil
}

func (r *pgMovieRepository) InsertMany(ctx context.Context, movies []*entity.Movie) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, m := range movies {
		prepareInsert(m, r.now)
		doc, err := json.Marshal(m)
		if err != nil {
			return 0, fmt.Errorf("failed to encode movie %q: %w", m.Title, err)
		}

		tag, err := tx.Exec(ctx,
			`INSERT INTO movies (id, doc, created_at, updated_at) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO NOTHING`,
			m.ID.Hex(), doc, m.CreatedAt, m.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert movie", zap.Error(err), zap.String("title", m.Title))
			return 0, fmt.Errorf("failed to insert movie %q: %w", m.Title, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}

func (r *pgMovieRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM movies`)
	if err != nil {
		r.log.Error("Failed to delete movies", zap.Error(err))
		return 0, fmt.Errorf("failed to delete movies: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgMovieRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range pgSchema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create movies schema: %w", err)
		}
	}

	r.log.Info("Movies table ready")
	return nil
}

func (r *pgMovieRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// pgWhere builds the WHERE clause (with a leading space) and its arguments.
func pgWhere(f MovieFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Type != "" {
		add(`doc->>'type' = $%d`, f.Type)
	}
	if f.Genre != "" {
		add(`EXISTS (SELECT 1 FROM jsonb_array_elements(COALESCE(doc->'genres', '[]'::jsonb)) g
			WHERE lower(g->>'title') = lower($%d))`, f.Genre)
	}
	if f.ReleaseYear != 0 {
		add(`(doc->>'releaseYear')::int = $%d`, f.ReleaseYear)
	}
	if f.Title != "" {
		add(`doc->>'title' ILIKE '%%' || $%d || '%%'`, escapeLike(f.Title))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// pgOrderBy renders the ordering. Missing values sort first ascending and
// last descending, the way Mongo orders them.
func pgOrderBy(order pagination.Sort) (string, error) {
	parts := make([]string, 0, len(order))
	for _, key := range order {
		expr, ok := pgSortExpr[key.Field]
		if !ok {
			return "", fmt.Errorf("%w: %q", pagination.ErrUnknownSortField, key.Field)
		}
		if key.Desc {
			parts = append(parts, expr+" DESC NULLS LAST")
		} else {
			parts = append(parts, expr+" ASC NULLS FIRST")
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

// escapeLike makes % and _ literal under the default backslash escape.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var (
		id        string
		doc       []byte
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &doc, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var movie entity.Movie
	if err := json.Unmarshal(doc, &movie); err != nil {
		return nil, fmt.Errorf("decode movie %s: %w", id, err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("decode movie id %q: %w", id, err)
	}
	movie.ID = oid
	movie.CreatedAt = createdAt.UTC()
	movie.UpdatedAt = updatedAt.UTC()
	movie.Normalize()
	return &movie, nil
}
