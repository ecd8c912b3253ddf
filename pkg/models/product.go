package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
)

// Product represents a catalog item. Once a product is referenced by a
// cart entry or an order line it is treated as immutable: orders keep a
// price snapshot, never a live reference.
type Product struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Price       float64       `bson:"price" json:"price"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Color       string        `bson:"productcolor,omitempty" json:"productcolor,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Color       string  `json:"productcolor"`
}

func (req *CreateProductRequest) ToProduct() *Product {
	now := time.Now()
	return &Product{
		ID:          bson.NewObjectID(),
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Color:       req.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate runs the pre-persistence checks that the storage layer used
// to enforce implicitly.
func (p *Product) Validate() error {
	if p.Name == "" {
		return apperr.Validation("product name is required")
	}
	if p.Price < 0 {
		return apperr.Validation("product price must not be negative")
	}
	return nil
}

func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
