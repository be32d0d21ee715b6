package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-booking/pkg/utils"
)

// InitMongo connects to MongoDB and returns the configured database handle.
// Callers disconnect through db.Client().
func InitMongo(ctx context.Context, config utils.DatabaseConfig) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(config.MongoURI).
		SetMaxPoolSize(uint64(max(config.MaxConns, 1)))

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client.Database(config.MongoDatabase), nil
}
