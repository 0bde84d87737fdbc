package order_test

import (
	"testing"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should trim and deduplicate ingredients", func(t *testing.T) {
		item, err := order.NewItem(" Burger ", 2, []string{"cheese", " cheese", "", "onion", "  "})

		require.NoError(t, err)
		assert.Equal(t, "Burger", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, []string{"cheese", "onion"}, item.Ingredients())
	})

	t.Run("should reject invalid params", func(t *testing.T) {
		testCases := []struct {
			name     string
			itemName string
			qty      int
			want     error
		}{
			{"empty name", "  ", 1, errs.ErrValueIsRequired},
			{"zero quantity", "Burger", 0, errs.ErrValueIsInvalid},
			{"negative quantity", "Burger", -2, errs.ErrValueIsInvalid},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewItem(tc.itemName, tc.qty, nil)

				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.Equal(t, order.ErrItemIsNotConstructed, order.Item{}.Validate())
	})
}

func TestResolveIngredients(t *testing.T) {
	t.Run("should tag extras once", func(t *testing.T) {
		got := order.ResolveIngredients(
			[]string{"bun", "patty"},
			[]string{"bacon", "extra: egg", "extra:cheese", " "},
		)

		assert.Equal(t, []string{"bun", "patty", "extra: bacon", "extra: egg", "extra: cheese"}, got)
	})

	t.Run("should drop duplicate extras", func(t *testing.T) {
		got := order.ResolveIngredients(nil, []string{"bacon", "extra: bacon"})

		assert.Equal(t, []string{"extra: bacon"}, got)
	})
}

func TestItem_IsEqual(t *testing.T) {
	a, _ := order.NewItem("Burger", 1, []string{"cheese"})
	b, _ := order.NewItem("Burger", 1, []string{"cheese"})
	c, _ := order.NewItem("Burger", 2, []string{"cheese"})

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
