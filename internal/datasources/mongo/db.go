package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	contentCollection = "contents"
	usersCollection   = "users"
)

func Connect(ctx context.Context, uri, database string) (*driver.Database, error) {
	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("checking MongoDB connection: %w", err)
	}

	return client.Database(database), nil
}

// EnsureIndexes creates the indexes the content and user queries rely on.
func EnsureIndexes(ctx context.Context, db *driver.Database) error {
	_, err := db.Collection(contentCollection).Indexes().CreateMany(ctx, []driver.IndexModel{
		{Keys: bson.D{{Key: "walrus_blob_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "creator_address", Value: 1}, {Key: "uploaded_at", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}, {Key: "is_public", Value: 1}}},
		{Keys: bson.D{{Key: "access_count", Value: -1}}},
		{Keys: bson.D{{Key: "total_earnings", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating content indexes: %w", err)
	}

	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, driver.IndexModel{
		Keys:    bson.D{{Key: "address", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}

	return nil
}
