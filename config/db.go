package config

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectAttempts = 5

// ConnectDB connects to MongoDB and pings the primary, retrying with
// exponential backoff. The caller owns the returned client.
func ConnectDB(ctx context.Context, uri, database string, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 500 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, connectAttempts-1), ctx)

	ping := func() error {
		pctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return client.Ping(pctx, readpref.Primary())
	}
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("retry_in", wait).Msg("MongoDB not reachable yet")
	}
	if err := backoff.RetryNotify(ping, policy, notify); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	log.Info().Str("database", database).Msg("Connected to MongoDB")
	return client, client.Database(database), nil
}
