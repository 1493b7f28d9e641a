package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"movies-api/pkg/utils"
)

// Mongo holds a connected client and the configured database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func (m *Mongo) Database() *mongo.Database {
	return m.db
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// InitMongo connects to the configured deployment, retrying per the
// database connect policy.
func InitMongo(ctx context.Context, config utils.MongoConfig, retry RetryPolicy, log *zap.Logger) (*Mongo, error) {
	return Connect(ctx, log, "mongo", retry, func(ctx context.Context) (*Mongo, error) {
		return OpenMongo(ctx, config.URI, config.Database)
	})
}

// OpenMongo makes a single connection attempt and pings the primary.
func OpenMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return &Mongo{client: client, db: client.Database(database)}, nil
}
