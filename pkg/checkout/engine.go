package checkout

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
)

// Store is the persistence surface the engine needs. *mongo.Store
// satisfies it; tests swap in an in-memory fake.
type Store interface {
	CartForUser(ctx context.Context, userID bson.ObjectID) ([]models.CartLine, error)
	InsertOrder(ctx context.Context, order *models.Order) error
	LinkCartToOrder(ctx context.Context, userID, orderID bson.ObjectID) error
	AppendOrderRef(ctx context.Context, userID, orderID bson.ObjectID) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Engine converts a user's current cart into a priced, immutable order.
type Engine struct {
	store Store
	locks *userLocks
}

func NewEngine(store Store) *Engine {
	return &Engine{
		store: store,
		locks: newUserLocks(),
	}
}

// Checkout snapshots the cart into a pending order: every line captures
// the product's price at this instant, the total is summed in integer
// cents, and the cart entries are tagged with the new order id rather
// than deleted. An empty payment method defaults to cash-on-delivery
// and the resolved value is set on the returned order. The order
// insert, cart relink and account order-history append run in one
// transaction, so a failure leaves no partial state behind.
func (e *Engine) Checkout(ctx context.Context, userID bson.ObjectID, paymentMethod string) (*models.Order, error) {
	resolved, err := models.ResolvePaymentMethod(paymentMethod)
	if err != nil {
		return nil, err
	}

	release := e.locks.acquire(userID.Hex())
	defer release()

	lines, err := e.store.CartForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperr.EmptyCart("cart is empty")
	}

	order := models.BuildOrder(userID, lines, resolved)

	err = e.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := e.store.InsertOrder(ctx, order); err != nil {
			return err
		}
		if err := e.store.LinkCartToOrder(ctx, userID, order.ID); err != nil {
			return err
		}
		return e.store.AppendOrderRef(ctx, userID, order.ID)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
