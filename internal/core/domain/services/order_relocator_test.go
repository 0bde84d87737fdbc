package services_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 1, 19, 15, 0, 0, time.UTC)

func item(t *testing.T, name string, qty int, ingredients ...string) order.Item {
	t.Helper()
	i, err := order.NewItem(name, qty, ingredients)
	require.NoError(t, err)
	return i
}

func newOrder(t *testing.T, table string, at time.Time, items ...order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.MustNewTable(table), at, items)
	require.NoError(t, err)
	return o
}

func TestOrderRelocator_MoveItem(t *testing.T) {
	relocator := services.NewOrderRelocator()

	t.Run("should create a target order holding exactly the moved item", func(t *testing.T) {
		burger := item(t, "Burger", 2, "cheese", "extra: bacon")
		source := newOrder(t, "5", placedAt, burger)
		newID := kernel.NewUUID()

		result, err := relocator.MoveItem(source, nil, kernel.NewTableNumber(7), newID, 0)

		require.NoError(t, err)
		assert.True(t, result.SourceEmptied)
		assert.True(t, result.TargetCreated)
		assert.True(t, newID.IsEqual(result.Target.ID()))
		assert.Equal(t, "7", result.Target.Table().String())
		assert.True(t, placedAt.Equal(result.Target.PlacedAt()))
		require.Len(t, result.Target.Items(), 1)
		assert.True(t, burger.IsEqual(result.Target.Items()[0]))
		assert.True(t, burger.IsEqual(result.Item))
	})

	t.Run("should append to the order already at the destination", func(t *testing.T) {
		source := newOrder(t, "5", placedAt, item(t, "Burger", 1), item(t, "Fries", 1))
		target := newOrder(t, "7", placedAt, item(t, "Cola", 1))

		result, err := relocator.MoveItem(source, target, kernel.NewTableNumber(7), kernel.UUID{}, 1)

		require.NoError(t, err)
		assert.False(t, result.SourceEmptied)
		assert.False(t, result.TargetCreated)
		assert.Same(t, target, result.Target)
		assert.Equal(t, "Burger", source.Items()[0].Name())
		require.Len(t, target.Items(), 2)
		assert.Equal(t, "Fries", target.Items()[1].Name())
	})

	t.Run("should preserve the total item count", func(t *testing.T) {
		source := newOrder(t, "5", placedAt, item(t, "A", 1), item(t, "B", 1), item(t, "C", 1))
		target := newOrder(t, "6", placedAt, item(t, "D", 1))
		before := len(source.Items()) + len(target.Items())

		_, err := relocator.MoveItem(source, target, kernel.NewTableNumber(6), kernel.NewUUID(), 2)

		require.NoError(t, err)
		assert.Equal(t, before, len(source.Items())+len(target.Items()))
	})

	t.Run("should fail on out of bounds index without touching the orders", func(t *testing.T) {
		source := newOrder(t, "5", placedAt, item(t, "Burger", 1))

		_, err := relocator.MoveItem(source, nil, kernel.NewTableNumber(7), kernel.NewUUID(), 1)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Len(t, source.Items(), 1)
	})

	t.Run("should reject the same table", func(t *testing.T) {
		source := newOrder(t, "5", placedAt, item(t, "Burger", 1))

		_, err := relocator.MoveItem(source, nil, kernel.MustNewTable("05"), kernel.NewUUID(), 0)

		assert.ErrorIs(t, err, services.ErrSameTable)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a target at another time or table", func(t *testing.T) {
		source := newOrder(t, "5", placedAt, item(t, "Burger", 1))
		other := newOrder(t, "7", placedAt.Add(time.Second), item(t, "Cola", 1))

		_, err := relocator.MoveItem(source, other, kernel.NewTableNumber(7), kernel.NewUUID(), 0)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Len(t, source.Items(), 1)
	})

	t.Run("should require an id for a created target", func(t *testing.T) {
		source := newOrder(t, "5", placedAt, item(t, "Burger", 1))

		_, err := relocator.MoveItem(source, nil, kernel.NewTableNumber(7), kernel.UUID{}, 0)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestOrderRelocator_MoveTable(t *testing.T) {
	relocator := services.NewOrderRelocator()
	to := kernel.NewTableNumber(7)

	t.Run("should relabel every source order", func(t *testing.T) {
		first := newOrder(t, "5", placedAt, item(t, "Burger", 1))
		second := newOrder(t, "5", placedAt.Add(time.Minute), item(t, "Cola", 1))

		result, err := relocator.MoveTable([]*order.Order{first, second}, nil, to)

		require.NoError(t, err)
		assert.Equal(t, []*order.Order{first, second}, result.Relabelled)
		assert.Empty(t, result.Merged)
		assert.Empty(t, result.Removed)
		assert.Equal(t, "7", first.Table().String())
		assert.Equal(t, "7", second.Table().String())
		assert.True(t, placedAt.Equal(first.PlacedAt()))
	})

	t.Run("should merge a source order colliding with a destination order", func(t *testing.T) {
		colliding := newOrder(t, "5", placedAt, item(t, "Burger", 1), item(t, "Fries", 1))
		free := newOrder(t, "5", placedAt.Add(time.Minute), item(t, "Cola", 1))
		existing := newOrder(t, "7", placedAt, item(t, "Salad", 1))

		result, err := relocator.MoveTable([]*order.Order{colliding, free}, []*order.Order{existing}, to)

		require.NoError(t, err)
		assert.Equal(t, []*order.Order{free}, result.Relabelled)
		assert.Equal(t, []*order.Order{existing}, result.Merged)
		assert.Equal(t, []*order.Order{colliding}, result.Removed)
		require.Len(t, existing.Items(), 3)
		assert.Equal(t, "Fries", existing.Items()[2].Name())
	})

	t.Run("should succeed with nothing to move", func(t *testing.T) {
		result, err := relocator.MoveTable(nil, nil, to)

		require.NoError(t, err)
		assert.Empty(t, result.Relabelled)
	})

	t.Run("should reject moving onto the same table", func(t *testing.T) {
		source := newOrder(t, "7", placedAt, item(t, "Burger", 1))

		_, err := relocator.MoveTable([]*order.Order{source}, nil, to)

		assert.ErrorIs(t, err, services.ErrSameTable)
	})

	t.Run("should reject a zero value destination", func(t *testing.T) {
		_, err := relocator.MoveTable(nil, nil, kernel.Table{})

		assert.Equal(t, kernel.ErrTableIsNotConstructed, err)
	})
}
