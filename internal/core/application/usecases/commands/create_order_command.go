package commands

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is one requested line of a new order. Ingredients are taken as given
// unless DefaultIngredients or ExtraIngredients is set, in which case they are
// resolved with order.ResolveIngredients.
type OrderLine struct {
	Item               string
	Quantity           int
	Ingredients        []string
	DefaultIngredients []string
	ExtraIngredients   []string
}

// CreateOrderCommand represents a submission of a new order for a table.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "5", time.Now(), []OrderLine{
//	    {Item: "Burger", Quantity: 2, DefaultIngredients: []string{"cheese"}, ExtraIngredients: []string{"bacon"}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	table    kernel.Table
	placedAt time.Time
	items    []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer table label and every line.
// Errors of all fields are joined; line errors name the offending index.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer string,
	placedAt time.Time,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTable(customer),
		cmd.setPlacedAt(placedAt),
		cmd.setItems(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Table() kernel.Table {
	return c.table
}

func (c CreateOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTable(customer string) error {
	table, err := kernel.NewTable(customer)
	if err != nil {
		return errs.NewValueIsRequiredError("customer")
	}
	c.table = table
	return nil
}

func (c *CreateOrderCommand) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("time")
	}
	c.placedAt = order.NormalizeTime(placedAt)
	return nil
}

func (c *CreateOrderCommand) setItems(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	var errList []error
	for i, line := range lines {
		ingredients := line.Ingredients
		if line.DefaultIngredients != nil || line.ExtraIngredients != nil {
			ingredients = order.ResolveIngredients(line.DefaultIngredients, line.ExtraIngredients)
		}
		item, err := order.NewItem(line.Item, line.Quantity, ingredients)
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.items = items
	return nil
}
