/* store.go
 * Contains the store struct and the constructors. The store is an optional operator facing audit log of lookups,
 * it never holds match data or session state
 */

package store

import (
	"context"
	"fmt"
	"valorant-bot/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Lookups *mongo.Collection
	}
}

// NewStore connects to mongo and returns a Store backed by the given database
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(ctx context.Context, dbName string, mongoURI string) (*Store, error) {
	if dbName == "" || mongoURI == "" {
		return nil, fmt.Errorf("dbName and mongoURI are required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	return newStoreFromClient(client, dbName), nil
}

func newStoreFromClient(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Lookups = db.Collection("lookups")
	return s
}

// New picks the audit log implementation from the configuration: mongo when MONGO_URI is set, else a no-op.
// The mongo client is disconnected when the application stops
func New(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (Interface, error) {
	if cfg.MongoURI == "" {
		logger.Info().Msg("MONGO_URI not set, lookup audit log disabled")
		return NopStore{}, nil
	}

	s, err := NewStore(context.Background(), cfg.MongoDatabase, cfg.MongoURI)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Close(ctx)
		},
	})
	logger.Info().Str("database", cfg.MongoDatabase).Msg("lookup audit log enabled")
	return s, nil
}

// Close disconnects the mongo client
func (s *Store) Close(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Disconnect(ctx)
}

var Module = fx.Provide(New)
