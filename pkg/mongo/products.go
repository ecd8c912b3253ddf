package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
)

func (s *Store) InsertProduct(ctx context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	if _, err := s.Collection("products").InsertOne(ctx, product); err != nil {
		return apperr.Store("failed to save product", err)
	}
	return nil
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.Collection("products").Find(ctx, bson.D{})
	if err != nil {
		return nil, apperr.Store("failed to list products", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperr.Store("failed to decode products", err)
	}
	return products, nil
}

func (s *Store) GetProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.Collection("products").FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Store("failed to fetch product", err)
	}
	return &product, nil
}
