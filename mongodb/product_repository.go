package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

// ProductRepository stores the parts catalog.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a ProductRepository over the given database.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection(ProductsCollection)}
}

// Upsert inserts a new product when no id is given, otherwise patches the
// matching document. Only the enumerated fields are written; updated_date
// is refreshed either way in one atomic store operation.
func (r *ProductRepository) Upsert(ctx context.Context, up domain.ProductUpsert) error {
	now := time.Now().UTC()
	fields := bson.D{
		{Key: "brand", Value: up.Brand},
		{Key: "name", Value: up.Name},
		{Key: "category", Value: up.Category},
		{Key: "car_make", Value: up.CarMake},
		{Key: "description", Value: up.Description},
		{Key: "part_number", Value: up.PartNumber},
		{Key: "position", Value: up.Position},
		{Key: "price", Value: up.Price},
		{Key: "picture_code", Value: up.PictureCode},
		{Key: "infos", Value: up.Infos},
		{Key: "is_featured", Value: up.IsFeatured},
		{Key: "is_popular", Value: up.IsPopular},
		{Key: "is_view", Value: up.IsView},
		{Key: "updated_date", Value: now},
		{Key: "updated_by", Value: up.UpdatedBy},
	}

	id := up.ID
	if id == "" {
		id = domain.NewID()
	}
	_, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error upserting product")
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// FindByID retrieves one product for a profile view.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoRecord
		}
		log.Error().Err(err).Str("id", id).Msg("Error looking up product")
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// Search returns one page of visible products matching the search filter,
// in the requested order.
func (r *ProductRepository) Search(ctx context.Context, q query.ProductSearch) (*domain.Page[domain.Product], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: q.Filter()}},
		{{Key: "$sort", Value: q.Sort.Doc()}},
	}
	pipeline = append(pipeline, pageStages(q.Offset, query.ProductPageLimit)...)

	return runPage[domain.Product](ctx, r.collection, pipeline, q.Offset, query.ProductPageLimit)
}

// Showcase returns a random, unordered sample of products carrying the
// selected curation flag.
func (r *ProductRepository) Showcase(ctx context.Context, flag domain.ShowcaseFlag, size int) ([]domain.Product, error) {
	field := "is_popular"
	if flag == domain.ShowcaseFeatured {
		field = "is_featured"
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: field, Value: true}}}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: size}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Error().Err(err).Str("flag", string(flag)).Msg("Showcase aggregation failed")
		return nil, fmt.Errorf("showcase sample: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode showcase sample: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrNoRecord
	}
	return products, nil
}

// FacetValues returns the distinct, non-null values of a stored field
// across all products, sorted ascending.
func (r *ProductRepository) FacetValues(ctx context.Context, storedField string) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$" + storedField}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: bson.D{{Key: "$ne", Value: nil}}}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Error().Err(err).Str("field", storedField).Msg("Facet aggregation failed")
		return nil, fmt.Errorf("facet values: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		Value string `bson:"_id"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode facet values: %w", err)
	}

	values := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Value != "" {
			values = append(values, g.Value)
		}
	}
	if len(values) == 0 {
		return nil, domain.ErrNoRecord
	}
	return values, nil
}

// Delete removes one product by id and reports whether a record was
// actually removed.
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error deleting product")
		return false, fmt.Errorf("delete product: %w", err)
	}
	return result.DeletedCount > 0, nil
}
