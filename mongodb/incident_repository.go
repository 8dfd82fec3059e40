package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

// IncidentRepository stores support tickets.
type IncidentRepository struct {
	collection *mongo.Collection
}

// NewIncidentRepository creates an IncidentRepository over the given database.
func NewIncidentRepository(db *mongo.Database) *IncidentRepository {
	return &IncidentRepository{collection: db.Collection(IncidentsCollection)}
}

// Upsert inserts a new ticket when no id is given (stamping both dates),
// otherwise patches the enumerated fields and refreshes date_updated.
func (r *IncidentRepository) Upsert(ctx context.Context, up domain.IncidentUpsert) error {
	now := time.Now().UTC()

	if up.ID == "" {
		incident := domain.Incident{
			ID:          domain.NewID(),
			Title:       up.Title,
			Description: up.Description,
			Type:        up.Type,
			Comment:     up.Comment,
			AssignedTo:  up.AssignedTo,
			CreatedBy:   up.CreatedBy,
			DateCreated: now,
			DateUpdated: now,
		}
		if _, err := r.collection.InsertOne(ctx, incident); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return domain.ErrTitleTaken
			}
			log.Error().Err(err).Msg("Error inserting incident")
			return fmt.Errorf("insert incident: %w", err)
		}
		return nil
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: up.Title},
		{Key: "description", Value: up.Description},
		{Key: "type", Value: up.Type},
		{Key: "comment", Value: up.Comment},
		{Key: "assigned_to", Value: up.AssignedTo},
		{Key: "date_updated", Value: now},
	}}}
	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: up.ID}}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrTitleTaken
		}
		log.Error().Err(err).Str("id", up.ID).Msg("Error updating incident")
		return fmt.Errorf("update incident: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNoRecord
	}
	return nil
}

// SetViewed marks a ticket viewed (or unviewed) and reassigns it to the
// acting user, in one atomic update.
func (r *IncidentRepository) SetViewed(ctx context.Context, id string, viewed bool, assignedTo string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_viewed", Value: viewed},
		{Key: "assigned_to", Value: assignedTo},
		{Key: "date_updated", Value: time.Now().UTC()},
	}}}
	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error marking incident viewed")
		return fmt.Errorf("mark incident viewed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNoRecord
	}
	return nil
}

// Resolve writes the resolution state and comment of a ticket. Ownership
// is checked by the caller before this runs.
func (r *IncidentRepository) Resolve(ctx context.Context, id, comment string, resolved bool) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "comment", Value: comment},
		{Key: "is_resolved", Value: resolved},
		{Key: "date_updated", Value: time.Now().UTC()},
	}}}
	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error resolving incident")
		return fmt.Errorf("resolve incident: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNoRecord
	}
	return nil
}

// FindByID retrieves one ticket with the assigned/creator usernames joined.
func (r *IncidentRepository) FindByID(ctx context.Context, id string) (*domain.IncidentProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	pipeline = append(pipeline, usernameLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Incident profile aggregation failed")
		return nil, fmt.Errorf("incident profile: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []domain.IncidentProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode incident profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, domain.ErrNoRecord
	}
	return &profiles[0], nil
}

// List returns one page of tickets matching the filter, sorted as
// requested, with usernames joined before the window is cut.
func (r *IncidentRepository) List(ctx context.Context, q query.IncidentList) (*domain.Page[domain.IncidentProfile], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: q.Filter()}},
		{{Key: "$sort", Value: q.Sort.Doc()}},
	}
	pipeline = append(pipeline, usernameLookupStages()...)
	pipeline = append(pipeline, pageStages(q.Offset, query.IncidentPageLimit)...)

	return runPage[domain.IncidentProfile](ctx, r.collection, pipeline, q.Offset, query.IncidentPageLimit)
}

// IsTitleTaken reports whether another ticket already uses the title,
// excluding the record's own id on update. Exact, case-sensitive match.
func (r *IncidentRepository) IsTitleTaken(ctx context.Context, title, excludeID string) (bool, error) {
	clauses := bson.A{bson.D{{Key: "title", Value: title}}}
	if excludeID != "" {
		clauses = append(clauses, bson.D{{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeID}}}})
	}
	filter := bson.D{{Key: "$and", Value: clauses}}

	err := r.collection.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		log.Error().Err(err).Str("title", title).Msg("Error checking incident title")
		return false, fmt.Errorf("check incident title: %w", err)
	}
	return true, nil
}

// Delete removes one ticket by id and reports whether a record was
// actually removed.
func (r *IncidentRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error deleting incident")
		return false, fmt.Errorf("delete incident: %w", err)
	}
	return result.DeletedCount > 0, nil
}
