package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fullstep/storefront-cart/internal/app/cart/contracts"
	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
	"github.com/fullstep/storefront-cart/internal/app/cart/projection"
	"github.com/fullstep/storefront-cart/internal/app/cart/store"
	"github.com/fullstep/storefront-cart/internal/pkg/clock"
	"github.com/fullstep/storefront-cart/internal/pkg/logger"
)

type fakeNotifier struct {
	mu    sync.Mutex
	notes []contracts.Notification
}

func (f *fakeNotifier) Notify(n contracts.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, n)
}

func (f *fakeNotifier) last(t *testing.T) contracts.Notification {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.notes)
	return f.notes[len(f.notes)-1]
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notes)
}

type fakeSink struct {
	orders []*domain.Order
	err    error
}

func (f *fakeSink) Record(ctx context.Context, o *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, o)
	return nil
}

func product(id int64, title, price string) domain.Product {
	m, err := domain.NewMoneyFromDecimal(price)
	if err != nil {
		panic(err)
	}
	return domain.Product{ID: id, Title: title, Price: m, Image: "img"}
}

func newTestEngine(t *testing.T) (*Engine, *store.MemoryStore, *fakeNotifier, *fakeSink) {
	t.Helper()
	st := store.NewMemoryStore()
	notes := &fakeNotifier{}
	sink := &fakeSink{}
	clk := clock.NewFake(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	eng := New(context.Background(), st, sink, notes, clk, logger.NewNop())
	return eng, st, notes, sink
}

func TestAddToCart_MochilaTwice(t *testing.T) {
	eng, _, notes, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddToCart(ctx, product(1, "Mochila", "19.99")))
	require.NoError(t, eng.AddToCart(ctx, product(1, "Mochila", "19.99")))

	lines := eng.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "39.98", projection.GrandTotal(lines).String())

	n := notes.last(t)
	assert.Equal(t, contracts.SeveritySuccess, n.Severity)
	assert.Equal(t, 2, notes.count())
}

func TestAddToCart_PersistsAcrossRestart(t *testing.T) {
	eng, st, _, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddToCart(ctx, product(1, "Mochila", "19.99")))
	require.NoError(t, eng.AddToCart(ctx, product(2, "Remera", "7.25")))

	// A new engine over the same store sees the same cart.
	eng2 := New(ctx, st, &fakeSink{}, &fakeNotifier{}, clock.RealClock{}, logger.NewNop())
	lines := eng2.Snapshot()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, int64(2), lines[1].ID)
}

func TestUpdateQuantity_RemovalAtFloor(t *testing.T) {
	eng, _, notes, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddToCart(ctx, product(1, "a", "10.00")))
	eng.UpdateQuantity(ctx, 1, -1)

	assert.Empty(t, eng.Snapshot())
	n := notes.last(t)
	assert.Equal(t, contracts.SeverityError, n.Severity)
	assert.Contains(t, n.Message, "removed")
}

func TestUpdateQuantity_SuccessNotificationStatesNewQuantity(t *testing.T) {
	eng, _, notes, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddToCart(ctx, product(1, "Mochila", "19.99")))
	eng.UpdateQuantity(ctx, 1, 2)

	lines := eng.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	n := notes.last(t)
	assert.Equal(t, contracts.SeveritySuccess, n.Severity)
	assert.Contains(t, n.Message, "3")
}

func TestUpdateQuantity_UnknownIDEmitsNothing(t *testing.T) {
	eng, st, notes, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddToCart(ctx, product(1, "a", "1.00")))
	before := st.SaveCount()
	wasNotes := notes.count()

	eng.UpdateQuantity(ctx, 42, 1)

	assert.Equal(t, before, st.SaveCount(), "no-op must not persist")
	assert.Equal(t, wasNotes, notes.count(), "no-op must not notify")
}

func TestRemoveItem(t *testing.T) {
	eng, _, notes, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddToCart(ctx, product(1, "Mochila", "19.99")))
	eng.RemoveItem(ctx, 1)

	assert.Empty(t, eng.Snapshot())
	n := notes.last(t)
	assert.Equal(t, contracts.SeverityError, n.Severity)
	assert.Contains(t, n.Message, "Mochila")
}

func TestRemoveItem_UnknownIDIsSilent(t *testing.T) {
	eng, _, notes, _ := newTestEngine(t)
	eng.RemoveItem(context.Background(), 99)
	assert.Equal(t, 0, notes.count())
}

func TestClearCart(t *testing.T) {
	eng, _, notes, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddToCart(ctx, product(1, "a", "1.00")))
	require.NoError(t, eng.AddToCart(ctx, product(2, "b", "2.00")))
	eng.ClearCart(ctx)

	assert.Empty(t, eng.Snapshot())
	n := notes.last(t)
	assert.Equal(t, contracts.SeverityError, n.Severity)
	assert.Contains(t, n.Message, "cleared")
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	eng, _, notes, sink := newTestEngine(t)

	ord, err := eng.Checkout(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Nil(t, ord)
	assert.Empty(t, eng.Snapshot())
	assert.Empty(t, sink.orders)

	n := notes.last(t)
	assert.Equal(t, contracts.SeverityError, n.Severity)
}

func TestCheckout_RecordsOrderAndEmptiesCart(t *testing.T) {
	eng, _, notes, sink := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.AddToCart(ctx, product(2, "a", "5.00")))
	eng.UpdateQuantity(ctx, 2, 2)
	require.NoError(t, eng.AddToCart(ctx, product(5, "b", "2.50")))

	ord, err := eng.Checkout(ctx)
	require.NoError(t, err)
	require.NotNil(t, ord)

	assert.Empty(t, eng.Snapshot())
	assert.Equal(t, 4, ord.ItemCount)
	assert.Equal(t, "17.50", ord.Total.String())
	require.Len(t, sink.orders, 1)
	assert.Equal(t, ord.OrderID, sink.orders[0].OrderID)

	n := notes.last(t)
	assert.Equal(t, contracts.SeveritySuccess, n.Severity)
}

func TestCheckout_SinkFailureStillEmptiesCart(t *testing.T) {
	eng, _, _, sink := newTestEngine(t)
	ctx := context.Background()
	sink.err = errors.New("sink down")

	require.NoError(t, eng.AddToCart(ctx, product(1, "a", "1.00")))
	ord, err := eng.Checkout(ctx)

	require.NoError(t, err)
	require.NotNil(t, ord)
	assert.Empty(t, eng.Snapshot())
}

// recordingStore tracks the order of saves relative to observer signals.
type recordingStore struct {
	inner *store.MemoryStore
	ops   *[]string
}

func (r *recordingStore) Load(ctx context.Context) (*domain.Cart, error) {
	return r.inner.Load(ctx)
}

func (r *recordingStore) Save(ctx context.Context, cart *domain.Cart) error {
	*r.ops = append(*r.ops, "save")
	return r.inner.Save(ctx, cart)
}

func TestMutation_PersistsBeforeObserversSee(t *testing.T) {
	ops := []string{}
	st := &recordingStore{inner: store.NewMemoryStore(), ops: &ops}
	clk := clock.NewFake(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	eng := New(context.Background(), st, &fakeSink{}, &fakeNotifier{}, clk, logger.NewNop())

	eng.Subscribe(func(lines []domain.Line) {
		ops = append(ops, "observe")
	})

	require.NoError(t, eng.AddToCart(context.Background(), product(1, "a", "1.00")))
	require.Equal(t, []string{"save", "observe"}, ops)
}

func TestNew_CorruptSnapshotDegradesToEmpty(t *testing.T) {
	st := store.NewMemoryStore()
	st.Seed([]byte("{this is not json"))

	eng := New(context.Background(), st, &fakeSink{}, &fakeNotifier{}, clock.RealClock{}, logger.NewNop())
	assert.Empty(t, eng.Snapshot())
}
