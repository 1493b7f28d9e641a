//go:build integration

package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movies-api/pkg/database"
	pkgtesting "movies-api/pkg/testing"
)

func TestMongoRepository_Contract(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewMongoContainerWithCleanup(ctx, t)

	db, err := database.OpenMongo(ctx, container.URI, "movies_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	var seq atomic.Int32
	runMovieRepositoryContract(t, func(t *testing.T) MovieRepository {
		coll := db.Collection(fmt.Sprintf("movie_active_%d", seq.Add(1)))
		repo := NewMongoMovieRepository(coll, zap.NewNop())
		require.NoError(t, repo.EnsureSchema(ctx))
		return repo
	})
}

func TestPostgresRepository_Contract(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewPGContainerWithCleanup(ctx, t)

	db, err := database.OpenPostgres(ctx, container.ConnString, 4)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	runMovieRepositoryContract(t, func(t *testing.T) MovieRepository {
		repo := NewPostgresMovieRepository(db, zap.NewNop())
		require.NoError(t, repo.EnsureSchema(ctx))
		_, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		return repo
	})
}
