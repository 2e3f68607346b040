package restaurant

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines the persistence operations for restaurant records.
//
// Every method is a single store call; the repository holds no cached state.
// Replace returns (nil, nil) when the identifier matches no record — the
// caller reports that as success with an empty result, deliberately
// asymmetric with Get.
type Repository interface {
	Insert(ctx context.Context, r *Restaurant) error
	List(ctx context.Context, filter Filter, page int) ([]Restaurant, error)
	Get(ctx context.Context, id string) (*Restaurant, error)
	Replace(ctx context.Context, id string, r *Restaurant) (*Restaurant, error)
	Delete(ctx context.Context, id string) error
}

// MongoRepository implements Repository against a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a repository over the given collection.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// Insert persists a new record. The store assigns the ObjectID, which is
// written back to r.ID.
func (m *MongoRepository) Insert(ctx context.Context, r *Restaurant) error {
	res, err := m.coll.InsertOne(ctx, r)
	if err != nil {
		return fmt.Errorf("inserting restaurant: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		r.ID = oid
	}
	return nil
}

// List returns one page of records matching the filter, sorted by rating
// descending. Pages are 1-indexed; the skip is PageSize*(page-1) and is
// passed to the store unclamped, so an out-of-range page surfaces as a
// driver error rather than being silently corrected.
func (m *MongoRepository) List(ctx context.Context, filter Filter, page int) ([]Restaurant, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetSkip(int64(PageSize * (page - 1))).
		SetLimit(PageSize)

	cursor, err := m.coll.Find(ctx, buildQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("listing restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	restaurants := []Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("decoding restaurants: %w", err)
	}
	return restaurants, nil
}

// Get returns the record with the given identifier, ErrInvalidID if the
// identifier is malformed, or ErrNotFound if no record matches.
func (m *MongoRepository) Get(ctx context.Context, id string) (*Restaurant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var r Restaurant
	err = m.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding restaurant %s: %w", id, err)
	}
	return &r, nil
}

// Replace rewrites all five business fields of the record with the given
// identifier and returns the post-update record. When no record matches,
// it returns (nil, nil) — a silent no-op, not an error.
func (m *MongoRepository) Replace(ctx context.Context, id string, r *Restaurant) (*Restaurant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{
		"name":         r.Name,
		"address":      r.Address,
		"phoneNumber":  r.PhoneNumber,
		"emailAddress": r.EmailAddress,
		"rating":       r.Rating,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Restaurant
	err = m.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("updating restaurant %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes the record with the given identifier. Deleting a
// nonexistent record is not an error; only a malformed identifier or a
// store failure is reported.
func (m *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("deleting restaurant %s: %w", id, err)
	}
	return nil
}

// buildQuery converts a Filter into a BSON query document. Each provided
// parameter becomes an exact-match predicate; absent parameters add nothing.
func buildQuery(f Filter) bson.M {
	query := bson.M{}
	if f.Address != "" {
		query["address"] = f.Address
	}
	if f.PhoneNumber != "" {
		query["phoneNumber"] = f.PhoneNumber
	}
	if f.EmailAddress != "" {
		query["emailAddress"] = f.EmailAddress
	}
	if f.Rating != nil {
		query["rating"] = *f.Rating
	}
	return query
}
