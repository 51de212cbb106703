package mongodb

import (
	"context"
	"fmt"

	"medizone/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the shared Mongo client and the application database handle.
// It is created once at startup and treated as read-only afterwards.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf(errConnectFmt, err)
	}

	// Confirm the deployment is reachable before serving traffic.
	if err := client.Database(adminDatabase).RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf(errPingFmt, err)
	}

	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
	}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.database.Collection(name)
}

// EnsureIndexes creates the unique constraints the repositories rely on.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldEmail, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf(errEnsureIndexFmt, collUsers, err)
	}

	return nil
}

func (d *DB) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
