package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const pingTimeout = 10 * time.Second

// Connect opens the process-wide client. A failed ping is logged but does not
// discard the client: the driver reconnects lazily and /test reports the state.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Printf("MongoDB ping failed: %v", err)
		return client, nil
	}
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")
	return client, nil
}

// Open connects and selects the named database. Empty settings yield a nil
// database, which the Gateway treats as unconfigured.
func Open(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database) {
	if uri == "" || name == "" {
		log.Println("DATABASE_URL or DATABASE_NAME not set, database endpoints disabled")
		return nil, nil
	}
	client, err := Connect(ctx, uri)
	if err != nil {
		log.Printf("Database unavailable: %v", err)
		return nil, nil
	}
	log.Printf("DATABASE_NAME: %s", name)
	return client, client.Database(name)
}
