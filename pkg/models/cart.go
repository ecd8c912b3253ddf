package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CartEntry is a per-(user, product) quantity counter. At most one
// entry exists for a given pair; repeat adds increment the quantity.
// OrderID stays nil until checkout tags the entry with the order it was
// consumed by. Entries are tagged at checkout, not deleted.
type CartEntry struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID  `bson:"user" json:"user"`
	ProductID bson.ObjectID  `bson:"product" json:"product"`
	Quantity  int            `bson:"quantity" json:"quantity"`
	OrderID   *bson.ObjectID `bson:"order,omitempty" json:"order,omitempty"`
	AddedAt   time.Time      `bson:"added_at" json:"added_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

// CartLine is a cart entry with its product resolved, the shape the
// checkout engine and the cart listing work with.
type CartLine struct {
	ID       bson.ObjectID  `bson:"_id" json:"id"`
	UserID   bson.ObjectID  `bson:"user" json:"user"`
	Quantity int            `bson:"quantity" json:"quantity"`
	OrderID  *bson.ObjectID `bson:"order,omitempty" json:"order,omitempty"`
	Product  Product        `bson:"product_doc" json:"product"`
}
