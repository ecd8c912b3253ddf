package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
)

// AddOrIncrement bumps the quantity for a (user, product) pair, creating
// the entry with quantity 1 if none exists. The upsert is a single
// atomic operation, so two concurrent adds for the same pair cannot lose
// an update; the unique (user, product) index guarantees at most one
// entry per pair. Returns the resulting entry.
func (s *Store) AddOrIncrement(ctx context.Context, userID, productID bson.ObjectID) (*models.CartEntry, error) {
	filter := bson.D{
		{Key: "user", Value: userID},
		{Key: "product", Value: productID},
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "quantity", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "user", Value: userID},
			{Key: "product", Value: productID},
			{Key: "added_at", Value: time.Now()},
		}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var entry models.CartEntry
	err := s.Collection("carts").FindOneAndUpdate(ctx, filter, update, opts).Decode(&entry)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// Two concurrent upserts for a brand-new pair can collide on the
		// unique index; the retry lands on the now-existing entry.
		err = s.Collection("carts").FindOneAndUpdate(ctx, filter, update, opts).Decode(&entry)
	}
	if err != nil {
		return nil, apperr.Store("failed to add product to cart", err)
	}
	return &entry, nil
}

// RemoveEntry deletes the (user, product) entry. NotFound when no entry
// matched; other entries are never touched.
func (s *Store) RemoveEntry(ctx context.Context, userID, productID bson.ObjectID) error {
	result, err := s.Collection("carts").DeleteOne(ctx, bson.D{
		{Key: "user", Value: userID},
		{Key: "product", Value: productID},
	})
	if err != nil {
		return apperr.Store("failed to delete cart entry", err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("product not found in the user's cart")
	}
	return nil
}

// CartForUser returns the user's cart entries with product documents
// resolved. No ordering is guaranteed.
func (s *Store) CartForUser(ctx context.Context, userID bson.ObjectID) ([]models.CartLine, error) {
	pipeline := bson.A{
		bson.D{
			{Key: "$match", Value: bson.D{{Key: "user", Value: userID}}},
		},
		bson.D{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: "products"},
				{Key: "localField", Value: "product"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "product_doc"},
			}},
		},
		bson.D{
			{Key: "$unwind", Value: "$product_doc"},
		},
	}

	cursor, err := s.Collection("carts").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperr.Store("failed to fetch cart", err)
	}
	defer cursor.Close(ctx)

	var lines []models.CartLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, apperr.Store("failed to decode cart", err)
	}
	return lines, nil
}

// LinkCartToOrder tags every cart entry of the user with the order that
// consumed it. Entries are tagged rather than deleted so the linkage
// stays queryable after checkout.
func (s *Store) LinkCartToOrder(ctx context.Context, userID, orderID bson.ObjectID) error {
	_, err := s.Collection("carts").UpdateMany(ctx,
		bson.D{{Key: "user", Value: userID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "order", Value: orderID}}}},
	)
	if err != nil {
		return apperr.Store("failed to link cart entries to order", err)
	}
	return nil
}
