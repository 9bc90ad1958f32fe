package mongo

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"quirknotes/internal/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrNotInitialized is returned by Shutdown when Init never succeeded.
var ErrNotInitialized = errors.New("mongo client not initialized")

// ErrShutdown is returned by Shutdown once the client has already been closed.
var ErrShutdown = errors.New("mongo client already shut down")

const connectTimeout = 10 * time.Second

var (
	drv driver = mongoDriver{}

	client       *mongo.Client
	db           *mongo.Database
	shutdownDone bool
	mu           sync.Mutex
)

// Init initializes the MongoDB connection (first successful call wins, thread-safe).
// A failed connect or ping leaves nothing cached, so a later call retries.
func Init(ctx context.Context, cfg config.Config, log *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil && db != nil {
		return client, db, nil
	}

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(connectTimeout).
		SetAppName("quirknotes")

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	cli, err := drv.Connect(ctx, opts)
	if err != nil {
		log.Error("failed to connect to mongo", "err", err)
		return nil, nil, err
	}

	if err := drv.Ping(ctx, cli); err != nil {
		log.Error("failed to ping mongo", "err", err)
		if derr := drv.Disconnect(ctx, cli); derr != nil {
			log.Warn("failed to disconnect after ping failure", "err", derr)
		}
		return nil, nil, err
	}

	client = cli
	db = cli.Database(cfg.MongoDBName)
	shutdownDone = false

	log.Info("successfully connected to mongo", "db", cfg.MongoDBName)

	return client, db, nil
}

// Client returns the singleton MongoDB client instance.
func Client() *mongo.Client {
	mu.Lock()
	defer mu.Unlock()
	return client
}

// DB returns the singleton MongoDB database instance.
func DB() *mongo.Database {
	mu.Lock()
	defer mu.Unlock()
	return db
}

// Shutdown gracefully shuts down the MongoDB connection.
// Safe to call more than once: later calls return ErrShutdown.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		if shutdownDone {
			return ErrShutdown
		}
		shutdownDone = true
		return ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := drv.Disconnect(ctx, client)

	client = nil
	db = nil
	shutdownDone = true

	return err
}

// Ping checks the live connection; it returns ErrNotInitialized before a successful Init.
func Ping(ctx context.Context) error {
	mu.Lock()
	cli := client
	mu.Unlock()

	if cli == nil {
		return ErrNotInitialized
	}
	return drv.Ping(ctx, cli)
}
