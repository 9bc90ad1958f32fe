package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// mongoDriver forwards to the official driver.
type mongoDriver struct{}

// Connect only builds the client; the driver dials lazily, so the first Ping is the real connectivity check.
func (mongoDriver) Connect(_ context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	cli, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return cli, nil
}

func (mongoDriver) Ping(ctx context.Context, cli *mongo.Client) error {
	if err := cli.Ping(ctx, readpref.PrimaryPreferred()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

func (mongoDriver) Disconnect(ctx context.Context, cli *mongo.Client) error {
	if cli == nil {
		return nil
	}
	if err := cli.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}
