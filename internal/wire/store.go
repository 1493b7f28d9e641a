package wire

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"movies-api/internal/data/repository"
	"movies-api/internal/seed"
	"movies-api/pkg/database"
	"movies-api/pkg/utils"
)

// CloseFunc releases the store connection.
type CloseFunc func(ctx context.Context) error

// OpenStore connects to the store named by DB_DRIVER, retrying per the
// connect policy, and makes sure its schema and indexes exist. The memory
// store starts with the sample catalog.
func OpenStore(ctx context.Context, config *utils.Config, log *zap.Logger) (*repository.Repository, CloseFunc, error) {
	retry := database.RetryPolicy{
		Attempts: config.Database.ConnectRetries,
		Delay:    config.Database.ConnectRetryDelay,
	}

	var (
		repo   *repository.Repository
		closer CloseFunc
	)

	switch config.Database.Driver {
	case utils.DriverMongo:
		db, err := database.InitMongo(ctx, config.Mongo, retry, log)
		if err != nil {
			return nil, nil, err
		}
		repo = repository.NewMongoRepository(db, config.Mongo.Collection, log)
		closer = db.Close

	case utils.DriverPostgres:
		db, err := database.InitDB(ctx, config.Database, log)
		if err != nil {
			return nil, nil, err
		}
		repo = repository.NewPostgresRepository(db, log)
		closer = func(context.Context) error {
			db.Close()
			return nil
		}

	case utils.DriverMemory:
		movies, err := seed.Load()
		if err != nil {
			return nil, nil, err
		}
		repo = repository.NewMemoryRepository(log, movies...)
		closer = func(context.Context) error { return nil }

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", config.Database.Driver)
	}

	if err := repo.Movie.EnsureSchema(ctx); err != nil {
		_ = closer(context.Background())
		return nil, nil, fmt.Errorf("ensure %s schema: %w", config.Database.Driver, err)
	}

	log.Info("Store ready", zap.String("driver", config.Database.Driver))
	return repo, closer, nil
}
