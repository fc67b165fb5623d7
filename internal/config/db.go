package config

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ConnectDB establishes a connection to MongoDB, retrying a few times so the
// server survives the database coming up after it.
func ConnectDB(cfg *AppConfig, logger *zerolog.Logger) (*mongo.Client, error) {
	maxRetries := 5
	retryInterval := 5 * time.Second

	var err error
	for i := 0; i < maxRetries; i++ {
		var client *mongo.Client
		client, err = mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err = client.Ping(ctx, readpref.Primary())
			cancel()
			if err == nil {
				logger.Info().Str("db", cfg.DBName).Msg("connected to MongoDB")
				return client, nil
			}
			_ = client.Disconnect(context.Background())
		}
		logger.Warn().Err(err).Int("attempt", i+1).Int("max", maxRetries).
			Dur("retry_in", retryInterval).Msg("failed to connect to database")
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}
