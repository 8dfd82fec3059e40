package mongodb

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. Called once
// at startup; creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	sessionModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index(), // not unique, repeated logins upsert
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0), // TTL cleanup
		},
	}
	if _, err := db.Collection(SessionsCollection).Indexes().CreateMany(ctx, sessionModels); err != nil {
		return fmt.Errorf("create session indexes: %w", err)
	}

	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	// Incident titles are unique case-sensitively; uniqueness is still
	// re-checked with an own-id exclusion on update, the index is the
	// backstop against concurrent writers.
	if _, err := db.Collection(IncidentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create incident indexes: %w", err)
	}

	log.Info().Msg("MongoDB indexes ensured")
	return nil
}
