package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
)

func line(price float64, qty int) CartLine {
	return CartLine{
		ID:       bson.NewObjectID(),
		UserID:   bson.NewObjectID(),
		Quantity: qty,
		Product:  Product{ID: bson.NewObjectID(), Name: "widget", Price: price},
	}
}

func TestResolvePaymentMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to cod", input: "", want: PaymentMethodCOD},
		{name: "cod passes through", input: "cod", want: PaymentMethodCOD},
		{name: "card passes through", input: "card", want: PaymentMethodCard},
		{name: "unknown rejected", input: "paypal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePaymentMethod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildOrderSnapshotsPricesAndTotals(t *testing.T) {
	userID := bson.NewObjectID()
	lines := []CartLine{line(10, 2), line(4.25, 3)}

	order := BuildOrder(userID, lines, PaymentMethodCard)

	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentMethodCard, order.PaymentMethod)
	assert.Equal(t, 32.75, order.TotalPrice)
	require.Len(t, order.Items, 2)
	assert.Equal(t, lines[0].Product.ID, order.Items[0].ProductID)
	assert.Equal(t, 10.0, order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.False(t, order.CreatedAt.IsZero())
	assert.False(t, order.ID.IsZero())
}

func TestBuildOrderTotalHasNoFloatDrift(t *testing.T) {
	userID := bson.NewObjectID()
	// 0.1 + 0.2 != 0.3 under naive float addition
	lines := []CartLine{line(0.10, 1), line(0.20, 1)}

	order := BuildOrder(userID, lines, PaymentMethodCOD)
	assert.Equal(t, 0.30, order.TotalPrice)
}

func TestOrderValidate(t *testing.T) {
	userID := bson.NewObjectID()
	valid := BuildOrder(userID, []CartLine{line(10, 1)}, PaymentMethodCOD)
	assert.NoError(t, valid.Validate())

	missingUser := BuildOrder(bson.ObjectID{}, []CartLine{line(10, 1)}, PaymentMethodCOD)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(missingUser.Validate()))

	empty := &Order{UserID: userID}
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(empty.Validate()))

	badQty := BuildOrder(userID, []CartLine{line(10, 1)}, PaymentMethodCOD)
	badQty.Items[0].Quantity = 0
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(badQty.Validate()))
}

func TestAttachProducts(t *testing.T) {
	p := &Product{ID: bson.NewObjectID(), Name: "gadget", Price: 7}
	orders := []Order{
		{Items: []OrderItem{
			{ProductID: p.ID, Quantity: 1, UnitPrice: 7},
			{ProductID: bson.NewObjectID(), Quantity: 2, UnitPrice: 3},
		}},
	}

	AttachProducts(orders, map[bson.ObjectID]*Product{p.ID: p})

	assert.Equal(t, p, orders[0].Items[0].Product)
	assert.Nil(t, orders[0].Items[1].Product, "missing products stay unresolved")
}
