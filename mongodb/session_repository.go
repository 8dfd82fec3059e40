package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"go.pilab.hu/partsdesk/domain"
)

// SessionRepository stores login sessions in MongoDB.
type SessionRepository struct {
	collection *mongo.Collection
}

// NewSessionRepository creates a SessionRepository over the given database.
func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{collection: db.Collection(SessionsCollection)}
}

// Upsert writes the session matched by (username, token). The token is
// freshly generated per login, so this is an insert in practice; the
// upsert keeps repeated logins from duplicating records.
func (r *SessionRepository) Upsert(ctx context.Context, session *domain.Session) error {
	filter := bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "username", Value: session.Username}},
		bson.D{{Key: "token", Value: session.Token}},
	}}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "user_id", Value: session.UserID},
		{Key: "username", Value: session.Username},
		{Key: "role", Value: session.Role},
		{Key: "token", Value: session.Token},
		{Key: "created_at", Value: session.CreatedAt},
		{Key: "expires_at", Value: session.ExpiresAt},
	}}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		log.Error().Err(err).Str("username", session.Username).Msg("Error storing session")
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// FindByToken retrieves a session by exact token match.
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	var session domain.Session
	err := r.collection.FindOne(ctx, bson.D{{Key: "token", Value: token}}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoRecord
		}
		log.Error().Err(err).Msg("Error looking up session by token")
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &session, nil
}

// DeleteByToken removes the session matching the token and reports
// whether a record was actually deleted.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "token", Value: token}})
	if err != nil {
		log.Error().Err(err).Msg("Error deleting session")
		return false, fmt.Errorf("delete session: %w", err)
	}
	return result.DeletedCount > 0, nil
}
