package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
)

func (s *Store) InsertAccount(ctx context.Context, account *models.Account) error {
	if _, err := s.Collection("users").InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Validation("email is already registered")
		}
		return apperr.Store("failed to save account", err)
	}
	return nil
}

func (s *Store) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := s.Collection("users").FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, apperr.Store("failed to fetch account", err)
	}
	return &account, nil
}

func (s *Store) FindAccountByID(ctx context.Context, id bson.ObjectID) (*models.Account, error) {
	var account models.Account
	err := s.Collection("users").FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, apperr.Store("failed to fetch account", err)
	}
	return &account, nil
}

// AppendOrderRef records a completed order on the account's order
// history list.
func (s *Store) AppendOrderRef(ctx context.Context, userID, orderID bson.ObjectID) error {
	result, err := s.Collection("users").UpdateOne(ctx,
		bson.D{{Key: "_id", Value: userID}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "orderHistory", Value: orderID}}}},
	)
	if err != nil {
		return apperr.Store("failed to record order on account", err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("account not found")
	}
	return nil
}
