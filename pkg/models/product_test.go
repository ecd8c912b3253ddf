package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
)

func TestProductValidate(t *testing.T) {
	ok := (&CreateProductRequest{Name: "Blue Shirt", Price: 19.99, Color: "blue"}).ToProduct()
	assert.NoError(t, ok.Validate())

	free := (&CreateProductRequest{Name: "Sample", Price: 0}).ToProduct()
	assert.NoError(t, free.Validate(), "a zero price is allowed")

	unnamed := (&CreateProductRequest{Price: 5}).ToProduct()
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(unnamed.Validate()))

	negative := (&CreateProductRequest{Name: "Broken", Price: -1}).ToProduct()
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(negative.Validate()))
}

func TestSignupRequestToAccount(t *testing.T) {
	req := &SignupRequest{Username: "ayesha", Email: "ayesha@example.com", Password: "secret"}

	account, err := req.ToAccount("hashed")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, account.Role, "role defaults to user")
	assert.Equal(t, "hashed", account.Password)
	assert.NotNil(t, account.OrderHistory)
	assert.False(t, account.IsAdmin())

	req.Role = RoleAdmin
	admin, err := req.ToAccount("hashed")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	req.Role = "superuser"
	_, err = req.ToAccount("hashed")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
