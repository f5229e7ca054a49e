package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, title, price string) Product {
	m, err := NewMoneyFromDecimal(price)
	if err != nil {
		panic(err)
	}
	return Product{ID: id, Title: title, Price: m, Image: "img"}
}

func TestAdd_NewLineThenIncrement(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "Mochila", "19.99"), now))
	require.NoError(t, c.Add(product(1, "Mochila", "19.99"), now))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAdd_OneLinePerDistinctID(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	adds := []int64{3, 1, 2, 1, 3, 3}
	for _, id := range adds {
		require.NoError(t, c.Add(product(id, "p", "1.00"), now))
	}

	lines := c.Lines()
	require.Len(t, lines, 3)
	// Insertion order is first-seen order.
	assert.Equal(t, int64(3), lines[0].ID)
	assert.Equal(t, int64(1), lines[1].ID)
	assert.Equal(t, int64(2), lines[2].ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, 1, lines[2].Quantity)
}

func TestAdd_FirstSeenWinsOnExistingLine(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "Mochila", "19.99"), now))
	// Same id with a different record: quantity bumps, fields stay frozen.
	require.NoError(t, c.Add(product(1, "Renamed", "99.99"), now))

	line, found := c.Find(1)
	require.True(t, found)
	assert.Equal(t, "Mochila", line.Title)
	assert.Equal(t, "19.99", line.Price.String())
	assert.Equal(t, 2, line.Quantity)
}

func TestAdd_ReAddAfterRemovalAppendsAtEnd(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "a", "1.00"), now))
	require.NoError(t, c.Add(product(2, "b", "2.00"), now))
	require.True(t, c.Remove(1, now))
	// Fresh record after removal: new line, new fields, placed at the end.
	require.NoError(t, c.Add(product(1, "a2", "3.00"), now))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(2), lines[0].ID)
	assert.Equal(t, int64(1), lines[1].ID)
	assert.Equal(t, "a2", lines[1].Title)
	assert.Equal(t, "3.00", lines[1].Price.String())
}

func TestAdd_RejectsMalformedProduct(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	assert.ErrorIs(t, c.Add(Product{ID: 0, Title: "x", Price: Zero()}, now), ErrInvalidProductID)
	assert.ErrorIs(t, c.Add(Product{ID: 1, Title: "  ", Price: Zero()}, now), ErrEmptyProductTitle)
	assert.ErrorIs(t, c.Add(Product{ID: 1, Title: "x"}, now), ErrNilPrice)
	assert.ErrorIs(t, c.Add(Product{ID: 1, Title: "x", Price: NewMoney(-1, 100)}, now), ErrNegativePrice)
	assert.True(t, c.IsEmpty())
}

func TestAdjustQuantity_FloorRemovesLine(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "a", "10.00"), now))
	require.True(t, c.AdjustQuantity(1, -1, now))

	assert.True(t, c.IsEmpty())
	evs := c.DrainEvents()
	require.NotEmpty(t, evs)
	_, ok := evs[len(evs)-1].(*LineRemovedEvent)
	assert.True(t, ok, "expected a line-removed event")
}

func TestAdjustQuantity_NeverStoresNonPositive(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "a", "1.00"), now))
	require.NoError(t, c.Add(product(1, "a", "1.00"), now))
	// Big negative delta jumps straight past zero.
	require.True(t, c.AdjustQuantity(1, -10, now))
	assert.True(t, c.IsEmpty())
}

func TestAdjustQuantity_UnknownIDIsNoOp(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "a", "1.00"), now))
	c.DrainEvents()

	assert.False(t, c.AdjustQuantity(42, 1, now))
	assert.Empty(t, c.Events())
	line, _ := c.Find(1)
	assert.Equal(t, 1, line.Quantity)
}

func TestAdjustQuantity_PreservesInsertionOrder(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "a", "1.00"), now))
	require.NoError(t, c.Add(product(2, "b", "1.00"), now))
	require.NoError(t, c.Add(product(3, "c", "1.00"), now))
	require.True(t, c.AdjustQuantity(1, 5, now))

	lines := c.Lines()
	assert.Equal(t, []int64{1, 2, 3}, []int64{lines[0].ID, lines[1].ID, lines[2].ID})
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "a", "1.00"), now))
	assert.False(t, c.Remove(2, now))
	assert.Equal(t, 1, c.Len())
}

func TestClear_AlwaysEmpties(t *testing.T) {
	c := NewCart()
	now := time.Now().UTC()

	require.NoError(t, c.Add(product(1, "a", "1.00"), now))
	require.NoError(t, c.Add(product(2, "b", "2.00"), now))
	c.Clear(now)
	assert.True(t, c.IsEmpty())

	// Clearing an empty cart stays empty and still records the event.
	c.DrainEvents()
	c.Clear(now)
	assert.True(t, c.IsEmpty())
	assert.Len(t, c.Events(), 1)
}

func TestReconstructCart_RaisesNoEvents(t *testing.T) {
	lines := []Line{
		{Product: product(1, "a", "1.50"), Quantity: 2},
		{Product: product(2, "b", "2.00"), Quantity: 1},
	}
	c := ReconstructCart(lines)

	assert.Empty(t, c.Events())
	got := c.Lines()
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, 2, got[0].Quantity)
}
