package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workhours/internal/platform/config"
)

const (
	WorkdaysCollection = "workdays"
	SitesCollection    = "sites"
)

func connectMongo(ctx context.Context, c config.DatabaseConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(c.URL).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	name := c.Name
	if name == "" {
		name = "workhours"
	}
	return client.Database(name), nil
}

func ensureMongoIndexes(ctx context.Context, mdb *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		WorkdaysCollection: {
			Keys:    bson.D{{Key: "dateString", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uq_dateString"),
		},
		SitesCollection: {
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uq_name"),
		},
	}
	for coll, model := range indexes {
		if _, err := mdb.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}
	return nil
}
