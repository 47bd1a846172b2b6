package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// MongoDBClient wraps a lazily-established, process-cached connection. Every
// caller goes through Connect, which either reuses the live client or fails
// fast within the connect timeout instead of hanging.
type MongoDBClient struct {
	uri    string
	mu     sync.Mutex
	Client *mongo.Client
}

// NewMongoDBClient creates the wrapper and eagerly verifies connectivity.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	c := &MongoDBClient{uri: uri}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if _, err := c.Connect(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Connect returns the cached client, establishing and pinging it on first
// use or after a disconnect.
func (c *MongoDBClient) Connect(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Client != nil {
		if err := c.Client.Ping(ctx, readpref.Primary()); err == nil {
			return c.Client, nil
		}
		_ = c.Client.Disconnect(ctx)
		c.Client = nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri).SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	c.Client = client
	return client, nil
}

// Disconnect tears down the cached client.
func (c *MongoDBClient) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.Client.Disconnect(ctx)
	c.Client = nil
}
