package testing

import (
	"context"
	"fmt"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

type MongoContainer struct {
	Container testcontainers.Container
	URI       string
}

func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start mongo container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoContainer{
		Container: mongoContainer,
		URI:       uri,
	}, nil
}

func NewMongoContainerWithCleanup(ctx context.Context, tb testing.TB) *MongoContainer {
	tb.Helper()

	container, err := NewMongoContainer(ctx)
	if err != nil {
		tb.Fatalf("failed to create mongo container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container.Container); err != nil {
			tb.Logf("failed to terminate mongo container: %v", err)
		}
	})

	return container
}
