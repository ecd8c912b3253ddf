package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a registered user or admin. The role field decides
// authorization scope; the password hash is never serialized.
type Account struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	Password     string          `bson:"password" json:"-"`
	Address      string          `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string          `bson:"phonenumber,omitempty" json:"phonenumber,omitempty"`
	Role         string          `bson:"role" json:"role"`
	OrderHistory []bson.ObjectID `bson:"orderHistory" json:"orderHistory"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updated_at"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	Phone    string `json:"phonenumber"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToAccount builds an Account with the given password hash. An empty
// role defaults to "user"; anything outside the known roles is rejected.
func (req *SignupRequest) ToAccount(passwordHash string) (*Account, error) {
	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, apperr.Validation("role must be either 'user' or 'admin'")
	}

	now := time.Now()
	return &Account{
		ID:           bson.NewObjectID(),
		Username:     req.Username,
		Email:        req.Email,
		Password:     passwordHash,
		Address:      req.Address,
		Phone:        req.Phone,
		Role:         role,
		OrderHistory: []bson.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
