package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
)

func (s *Store) InsertOrder(ctx context.Context, order *models.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	if _, err := s.Collection("orders").InsertOne(ctx, order); err != nil {
		return apperr.Store("failed to save order", err)
	}
	return nil
}

// OrdersForUser returns every order belonging to the user with each
// line item's product reference resolved to the full product document.
// Read-only; no ordering is guaranteed.
func (s *Store) OrdersForUser(ctx context.Context, userID bson.ObjectID) ([]models.Order, error) {
	cursor, err := s.Collection("orders").Find(ctx, bson.D{{Key: "user", Value: userID}})
	if err != nil {
		return nil, apperr.Store("failed to fetch order history", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperr.Store("failed to decode orders", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	products, err := s.productsForOrders(ctx, orders)
	if err != nil {
		return nil, err
	}
	models.AttachProducts(orders, products)
	return orders, nil
}

func (s *Store) productsForOrders(ctx context.Context, orders []models.Order) (map[bson.ObjectID]*models.Product, error) {
	seen := make(map[bson.ObjectID]struct{})
	ids := bson.A{}
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := seen[item.ProductID]; !ok {
				seen[item.ProductID] = struct{}{}
				ids = append(ids, item.ProductID)
			}
		}
	}

	cursor, err := s.Collection("products").Find(ctx, bson.D{
		{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
	})
	if err != nil {
		return nil, apperr.Store("failed to resolve order products", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperr.Store("failed to decode order products", err)
	}

	byID := make(map[bson.ObjectID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return byID, nil
}
