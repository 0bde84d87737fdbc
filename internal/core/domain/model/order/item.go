package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"pos/internal/pkg/errs"
)

// ExtraPrefix tags an ingredient that was added on top of the item's recipe.
const ExtraPrefix = "extra: "

// ErrItemIsNotConstructed is returned for a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. It is a value object: relocation moves it
// between orders unchanged.
type Item struct {
	name        string
	quantity    int
	ingredients []string
}

// NewItem creates an order line. Ingredients are trimmed, blank entries dropped
// and duplicates removed keeping the first occurrence.
//
// Example:
//
//	item, err := order.NewItem("Burger", 2, []string{"cheese", "extra: bacon"})
func NewItem(name string, quantity int, ingredients []string) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.ingredients = uniqueIngredients(ingredients)
	return item, nil
}

// ResolveIngredients builds the ingredient list of a line composed from a menu
// item: the selected defaults followed by the extras, every extra carrying
// ExtraPrefix exactly once.
func ResolveIngredients(defaults, extras []string) []string {
	resolved := make([]string, 0, len(defaults)+len(extras))
	resolved = append(resolved, defaults...)
	for _, extra := range extras {
		extra = strings.TrimSpace(extra)
		if extra == "" {
			continue
		}
		if !strings.HasPrefix(extra, ExtraPrefix) {
			extra = ExtraPrefix + strings.TrimSpace(strings.TrimPrefix(extra, strings.TrimSpace(ExtraPrefix)))
		}
		resolved = append(resolved, extra)
	}
	return uniqueIngredients(resolved)
}

func (i Item) Validate() error {
	if i.name == "" {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

// Ingredients returns a copy of the resolved ingredient list.
func (i Item) Ingredients() []string {
	return slices.Clone(i.ingredients)
}

// IsEqual compares lines by value.
func (i Item) IsEqual(other Item) bool {
	return i.name == other.name &&
		i.quantity == other.quantity &&
		slices.Equal(i.ingredients, other.ingredients)
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func uniqueIngredients(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		ing = strings.TrimSpace(ing)
		if ing == "" || slices.Contains(out, ing) {
			continue
		}
		out = append(out, ing)
	}
	return out
}
