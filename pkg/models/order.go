package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"

	PaymentMethodCOD  = "cod"
	PaymentMethodCard = "card"
)

// OrderItem is a single order line. UnitPrice is the product price
// captured at checkout time; later product price changes never touch it.
// Product carries the resolved product document on read paths and is
// not persisted with the order.
type OrderItem struct {
	ProductID bson.ObjectID `bson:"product" json:"product_id"`
	Quantity  int           `bson:"quantity" json:"quantity"`
	UnitPrice float64       `bson:"price" json:"price"`
	Product   *Product      `bson:"-" json:"product,omitempty"`
}

// Order is the immutable result of a checkout. Only the status may
// change after creation.
type Order struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        bson.ObjectID `bson:"user" json:"user"`
	Items         []OrderItem   `bson:"products" json:"products"`
	TotalPrice    float64       `bson:"totalPrice" json:"totalPrice"`
	Status        string        `bson:"status" json:"status"`
	PaymentMethod string        `bson:"paymentMethod" json:"paymentMethod"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}

// ResolvePaymentMethod applies the checkout default: an empty value
// falls back to cash-on-delivery, anything unrecognized is rejected.
func ResolvePaymentMethod(method string) (string, error) {
	switch method {
	case "":
		return PaymentMethodCOD, nil
	case PaymentMethodCOD, PaymentMethodCard:
		return method, nil
	default:
		return "", apperr.Validation("payment method must be 'cod' or 'card'")
	}
}

// priceCents converts a currency amount to integer cents so totals are
// exact to the currency's native precision.
func priceCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// BuildOrder snapshots the given cart lines into a new pending order.
// Each line's unit price is the product's price at this instant and the
// total is summed in integer cents.
func BuildOrder(userID bson.ObjectID, lines []CartLine, paymentMethod string) *Order {
	items := make([]OrderItem, 0, len(lines))
	var totalCents int64
	for _, line := range lines {
		items = append(items, OrderItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
		totalCents += priceCents(line.Product.Price) * int64(line.Quantity)
	}

	return &Order{
		ID:            bson.NewObjectID(),
		UserID:        userID,
		Items:         items,
		TotalPrice:    float64(totalCents) / 100,
		Status:        OrderStatusPending,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now(),
	}
}

// Validate runs the pre-persistence checks for an order.
func (o *Order) Validate() error {
	if o.UserID.IsZero() {
		return apperr.Validation("order user is required")
	}
	if len(o.Items) == 0 {
		return apperr.Validation("order must contain at least one item")
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return apperr.Validation("order item quantity must be at least 1")
		}
		if item.UnitPrice < 0 {
			return apperr.Validation("order item price must not be negative")
		}
	}
	return nil
}

// AttachProducts resolves order line product references against the
// given products, keyed by id. Lines whose product no longer exists are
// left unresolved.
func AttachProducts(orders []Order, products map[bson.ObjectID]*Product) {
	for i := range orders {
		for j := range orders[i].Items {
			if p, ok := products[orders[i].Items[j].ProductID]; ok {
				orders[i].Items[j].Product = p
			}
		}
	}
}
