package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
)

type StatusSegment struct {
	Status        string  `json:"status" bson:"_id"`
	OrderCount    int     `json:"order_count" bson:"count"`
	Revenue       float64 `json:"revenue" bson:"revenue"`
	AvgOrderValue float64 `json:"avg_order_value" bson:"avg_order_value"`
}

type OrderSummaryResult struct {
	Segments    []StatusSegment `json:"segments"`
	TotalOrders int             `json:"total_orders"`
}

// OrderStatusSummary groups all orders by status with count, revenue
// and average order value per bucket.
func (s *Store) OrderStatusSummary(ctx context.Context) (*OrderSummaryResult, error) {
	pipeline := bson.A{
		bson.D{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$status"},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
				{Key: "avg_order_value", Value: bson.D{{Key: "$avg", Value: "$totalPrice"}}},
			}},
		},
		bson.D{
			{Key: "$project", Value: bson.D{
				{Key: "count", Value: 1},
				{Key: "revenue", Value: bson.D{{Key: "$round", Value: bson.A{"$revenue", 2}}}},
				{Key: "avg_order_value", Value: bson.D{{Key: "$round", Value: bson.A{"$avg_order_value", 2}}}},
			}},
		},
		bson.D{
			{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}},
		},
	}

	cursor, err := s.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperr.Store("failed to aggregate orders", err)
	}
	defer cursor.Close(ctx)

	var segments []StatusSegment
	if err := cursor.All(ctx, &segments); err != nil {
		return nil, apperr.Store("failed to decode order summary", err)
	}

	totalOrders := 0
	for _, segment := range segments {
		totalOrders += segment.OrderCount
	}

	return &OrderSummaryResult{
		Segments:    segments,
		TotalOrders: totalOrders,
	}, nil
}
