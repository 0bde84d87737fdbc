package order

import (
	"errors"
	"slices"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is one submission for a table. It is the aggregate root of the order store.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must be bound to a table
//   - PlacedAt is truncated to milliseconds, in UTC, and never changes
//   - A freshly created order holds at least one item
//
// An order may be left without items only transiently, while relocation is
// moving its last line away; callers delete it in that case (see IsEmpty).
type Order struct {
	id       kernel.UUID
	table    kernel.Table
	placedAt time.Time

	// items keep insertion order
	items []Item

	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// an order from user input.
//
// Parameters:
//   - id: unique identifier for the order
//   - table: table the order belongs to
//   - placedAt: creation time; clients use it as a correlation key
//   - items: the order lines, at least one
//
// Example:
//
//	burger, _ := order.NewItem("Burger", 1, nil)
//	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewTableNumber(5), time.Now(), []order.Item{burger})
func NewOrder(id kernel.UUID, table kernel.Table, placedAt time.Time, items []Item) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTable(table),
		o.setPlacedAt(placedAt),
		o.setItems(items, true),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read back from storage. Unlike NewOrder it
// accepts an empty item list.
func RestoreOrder(id kernel.UUID, table kernel.Table, placedAt time.Time, items []Item) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTable(table),
		o.setPlacedAt(placedAt),
		o.setItems(items, false),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NormalizeTime truncates t to the millisecond precision orders are stored and
// exchanged with.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Table() kernel.Table {
	return o.table
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// PlacedAtMillis returns the placement time as Unix milliseconds, the form
// clients send back when addressing an order.
func (o *Order) PlacedAtMillis() int64 {
	return o.placedAt.UnixMilli()
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// RemoveItem detaches the line at index and returns it.
//
// Returns an ObjectNotFoundError when index does not address an existing line.
func (o *Order) RemoveItem(index int) (Item, error) {
	if index < 0 || index >= len(o.items) {
		return Item{}, errs.NewObjectNotFoundError("item index", index)
	}
	item := o.items[index]
	o.items = slices.Delete(o.items, index, index+1)
	return item, nil
}

// AppendItems adds lines after the existing ones, preserving their order.
func (o *Order) AppendItems(items ...Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append(o.items, items...)
	return nil
}

// Relabel moves the order to another table. The placement time is kept.
func (o *Order) Relabel(table kernel.Table) error {
	return o.setTable(table)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTable(table kernel.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	o.table = table
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("time")
	}
	o.placedAt = NormalizeTime(placedAt)
	return nil
}

func (o *Order) setItems(items []Item, requireOne bool) error {
	if requireOne && len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}
