package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

// UserRepository reads user accounts. Account creation and management
// happen outside this service.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a UserRepository over the given database.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection(UsersCollection)}
}

// FindByUsername looks up one account by exact username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoRecord
		}
		log.Error().Err(err).Str("username", username).Msg("Error looking up user")
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// List returns one page of non-admin accounts matching the username
// filter, in ascending username order, password stripped.
func (r *UserRepository) List(ctx context.Context, q query.UserList) (*domain.Page[domain.User], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: q.Filter()}},
		{{Key: "$sort", Value: bson.D{{Key: "username", Value: 1}}}},
		{{Key: "$project", Value: bson.D{{Key: "password", Value: 0}}}},
	}
	pipeline = append(pipeline, pageStages(q.Offset, query.UserPageLimit)...)

	return runPage[domain.User](ctx, r.collection, pipeline, q.Offset, query.UserPageLimit)
}
