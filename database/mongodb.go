package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var DB *mongo.Database

// Connect establishes the shared database handle. The driver's topology
// monitor handles reconnects after startup; a failed initial connect is
// fatal to the caller.
func Connect(mongoURI string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	DB = client.Database("shopmill")
	log.Println("Connected to MongoDB")

	return ensureIndexes(ctx)
}

// ensureIndexes backs the uniqueness invariants: duplicate emails,
// product names and order numbers must surface as duplicate-key errors.
func ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		"users":    {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		"products": {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		"orders":   {Keys: bson.D{{Key: "orderNumber", Value: 1}}, Options: unique},
	}

	for collection, model := range indexes {
		if _, err := DB.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
