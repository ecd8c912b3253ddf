package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindEmptyCart, KindOf(EmptyCart("cart is empty")))
	assert.Equal(t, KindStore, KindOf(Store("write failed", nil)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("checkout failed: %w", NotFound("product not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, Is(err, KindNotFound))
	assert.False(t, Is(err, KindValidation))
}

func TestErrorMessageAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store("failed to save order", cause)

	assert.Equal(t, "failed to save order: connection refused", err.Error())
	require.ErrorIs(t, err, cause)

	bare := Validation("name is required")
	assert.Equal(t, "name is required", bare.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "empty_cart", KindEmptyCart.String())
	assert.Equal(t, "store", KindStore.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
