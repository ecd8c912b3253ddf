package checkout

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
)

type fakeStore struct {
	mu        sync.Mutex
	lines     map[bson.ObjectID][]models.CartLine
	orders    []*models.Order
	linked    map[bson.ObjectID]bson.ObjectID // user -> order
	appended  map[bson.ObjectID][]bson.ObjectID
	insertErr error

	// tracks overlapping store access to verify per-user serialization
	active int32
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		lines:    make(map[bson.ObjectID][]models.CartLine),
		linked:   make(map[bson.ObjectID]bson.ObjectID),
		appended: make(map[bson.ObjectID][]bson.ObjectID),
	}
}

func (f *fakeStore) addLine(userID bson.ObjectID, product models.Product, qty int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines[userID] = append(f.lines[userID], models.CartLine{
		ID:       bson.NewObjectID(),
		UserID:   userID,
		Quantity: qty,
		Product:  product,
	})
}

func (f *fakeStore) CartForUser(_ context.Context, userID bson.ObjectID) ([]models.CartLine, error) {
	if atomic.AddInt32(&f.active, 1) > 1 {
		panic("concurrent checkout for the same user reached the store")
	}
	defer atomic.AddInt32(&f.active, -1)

	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.CartLine, len(f.lines[userID]))
	copy(out, f.lines[userID])
	return out, nil
}

func (f *fakeStore) InsertOrder(_ context.Context, order *models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *order
	f.orders = append(f.orders, &clone)
	return nil
}

func (f *fakeStore) LinkCartToOrder(_ context.Context, userID, orderID bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.linked[userID] = orderID
	for i := range f.lines[userID] {
		id := orderID
		f.lines[userID][i].OrderID = &id
	}
	return nil
}

func (f *fakeStore) AppendOrderRef(_ context.Context, userID, orderID bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended[userID] = append(f.appended[userID], orderID)
	return nil
}

func (f *fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func product(price float64) models.Product {
	return models.Product{ID: bson.NewObjectID(), Name: "widget", Price: price}
}

func TestCheckoutSnapshotsCartIntoOrder(t *testing.T) {
	store := newFakeStore()
	userID := bson.NewObjectID()
	store.addLine(userID, product(10), 2)

	engine := NewEngine(store)
	order, err := engine.Checkout(context.Background(), userID, "card")
	require.NoError(t, err)

	assert.Equal(t, 20.0, order.TotalPrice)
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 10.0, order.Items[0].UnitPrice)
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, store.orders, 1)
	assert.Equal(t, order.ID, store.linked[userID], "cart entries must be tagged with the order id")
	assert.Equal(t, []bson.ObjectID{order.ID}, store.appended[userID])
}

func TestCheckoutDefaultsPaymentMethodToCOD(t *testing.T) {
	store := newFakeStore()
	userID := bson.NewObjectID()
	store.addLine(userID, product(5.50), 1)

	order, err := NewEngine(store).Checkout(context.Background(), userID, "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	store := newFakeStore()
	userID := bson.NewObjectID()
	store.addLine(userID, product(5), 1)

	_, err := NewEngine(store).Checkout(context.Background(), userID, "bitcoin")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Empty(t, store.orders, "no order may be created for a rejected payment method")
}

func TestCheckoutEmptyCartFailsWithoutSideEffects(t *testing.T) {
	store := newFakeStore()
	userID := bson.NewObjectID()

	_, err := NewEngine(store).Checkout(context.Background(), userID, "cod")
	require.Error(t, err)
	assert.Equal(t, apperr.KindEmptyCart, apperr.KindOf(err))
	assert.Empty(t, store.orders)
	assert.Empty(t, store.linked)
}

func TestCheckoutTotalIsExactInCents(t *testing.T) {
	store := newFakeStore()
	userID := bson.NewObjectID()
	// 0.1+0.2 style sums drift under naive float addition
	store.addLine(userID, product(0.10), 1)
	store.addLine(userID, product(0.20), 1)
	store.addLine(userID, product(19.99), 3)

	order, err := NewEngine(store).Checkout(context.Background(), userID, "cod")
	require.NoError(t, err)
	assert.Equal(t, 60.27, order.TotalPrice)
}

func TestCheckoutPriceSnapshotIsImmuneToLaterChanges(t *testing.T) {
	store := newFakeStore()
	userID := bson.NewObjectID()
	p := product(10)
	store.addLine(userID, p, 1)

	order, err := NewEngine(store).Checkout(context.Background(), userID, "cod")
	require.NoError(t, err)

	// bump the catalog price after checkout
	store.mu.Lock()
	store.lines[userID][0].Product.Price = 99
	store.mu.Unlock()

	assert.Equal(t, 10.0, store.orders[0].Items[0].UnitPrice)
	assert.Equal(t, 10.0, order.TotalPrice)
}

func TestCheckoutInsertFailurePropagates(t *testing.T) {
	store := newFakeStore()
	userID := bson.NewObjectID()
	store.addLine(userID, product(10), 1)
	store.insertErr = apperr.Store("failed to save order", nil)

	_, err := NewEngine(store).Checkout(context.Background(), userID, "cod")
	require.Error(t, err)
	assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
	assert.Empty(t, store.linked, "cart must not be relinked when the order insert fails")
}

func TestCheckoutSerializesPerUser(t *testing.T) {
	store := newFakeStore()
	userID := bson.NewObjectID()
	store.addLine(userID, product(10), 1)
	engine := NewEngine(store)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = engine.Checkout(context.Background(), userID, "cod")
		}()
	}
	wg.Wait()

	// the fake panics if two checkouts for the same user overlap
	assert.Len(t, store.appended[userID], 8)
}
