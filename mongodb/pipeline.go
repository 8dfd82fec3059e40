package mongodb

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"go.pilab.hu/partsdesk/domain"
)

// pageStages collapses the filtered, sorted stream into a single document
// holding the requested window and the total match count:
//
//	{ collection: [<offset*limit, +limit)], pagination: { total } }
//
// An empty matching set produces zero documents, which runPage reports as
// ErrNoRecord. An out-of-range window over a non-empty set produces an
// empty collection with a correct total, which is not an error.
func pageStages(offset, limit int) []bson.D {
	return []bson.D{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "collection", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "collection", Value: bson.D{
				{Key: "$slice", Value: bson.A{"$collection", offset * limit, limit}},
			}},
			{Key: "pagination", Value: bson.D{{Key: "total", Value: "$total"}}},
		}}},
	}
}

// usernameLookupStages left-joins the assigned_to and created_by user ids
// to their usernames. Single-value denormalization: the first matching
// username or nothing.
func usernameLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UsersCollection},
			{Key: "localField", Value: "assigned_to"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "assigned_username"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UsersCollection},
			{Key: "localField", Value: "created_by"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "created_username"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "assigned_username", Value: bson.D{
				{Key: "$arrayElemAt", Value: bson.A{"$assigned_username.username", 0}},
			}},
			{Key: "created_username", Value: bson.D{
				{Key: "$arrayElemAt", Value: bson.A{"$created_username.username", 0}},
			}},
		}}},
	}
}

// runPage executes a paginating pipeline and decodes the single result
// document. Zero result documents means nothing matched the filter.
func runPage[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, offset, limit int) (*domain.Page[T], error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		log.Error().Err(err).Str("collection", coll.Name()).Msg("Aggregation failed")
		return nil, fmt.Errorf("aggregate %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var pages []domain.Page[T]
	if err := cursor.All(ctx, &pages); err != nil {
		log.Error().Err(err).Str("collection", coll.Name()).Msg("Decoding aggregation result failed")
		return nil, fmt.Errorf("decode %s page: %w", coll.Name(), err)
	}
	if len(pages) == 0 {
		return nil, domain.ErrNoRecord
	}

	page := pages[0]
	page.Finalize(offset, limit)
	return &page, nil
}
