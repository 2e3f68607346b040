package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// defaultConnectTimeout bounds the initial connection and ping when the
// config does not specify one.
const defaultConnectTimeout = 5 * time.Second

// Config contains MongoDB connection options.
// These map to the mongo section of config.yaml.
type Config struct {
	// URI is the MongoDB connection string (mongodb://... or mongodb+srv://...).
	URI string

	// Database is the database name holding the restaurants collection.
	Database string

	// ConnectTimeout is the maximum time to establish and verify the
	// connection (seconds). 0 uses the default.
	ConnectTimeout int
}

// Client wraps a mongo.Client with lifecycle management.
type Client struct {
	client   *mongo.Client
	database string
}

// Connect establishes a MongoDB connection and verifies it with a ping.
//
// Parameters:
//   - ctx: Context for the connection attempt
//   - cfg: Connection options
//
// Returns:
//   - *Client: Connected client wrapper
//   - error: If the connection or ping fails
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	timeout := defaultConnectTimeout
	if cfg.ConnectTimeout > 0 {
		timeout = time.Duration(cfg.ConnectTimeout) * time.Second
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		// Best-effort cleanup of the half-open client.
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &Client{client: client, database: cfg.Database}, nil
}

// Database returns a handle to the configured database.
func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.database)
}

// Collection returns a handle to a collection in the configured database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database().Collection(name)
}

// Close disconnects the client, releasing all connection pool resources.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}
	return nil
}

// HealthCheck verifies the store connection is alive.
//
// Returns:
//   - error: nil if healthy, error describing the issue otherwise
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb health check: %w", err)
	}
	return nil
}
