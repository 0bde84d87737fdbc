package commands

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrMoveItemCommandIsNotConstructed = errors.New(
	"MoveItemCommand must be created via NewMoveItemCommand constructor",
)

// MoveItemCommand moves one line of the order at (fromTable, orderTime) to the
// order at (toTable, orderTime), creating that order when needed.
//
// Example:
//
//	cmd, err := NewMoveItemCommand("5", "7", time.UnixMilli(orderTime), 0, kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type MoveItemCommand struct { //nolint:recvcheck //using for validation
	fromTable  kernel.Table
	toTable    kernel.Table
	orderTime  time.Time
	itemIndex  int
	newOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMoveItemCommand validates both tables and the order time. newOrderID
// identifies the order created at the destination when none exists there yet.
func NewMoveItemCommand(
	fromTable, toTable string,
	orderTime time.Time,
	itemIndex int,
	newOrderID kernel.UUID,
) (MoveItemCommand, error) {
	cmd := MoveItemCommand{
		itemIndex: itemIndex,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTables(fromTable, toTable),
		cmd.setOrderTime(orderTime),
		cmd.setNewOrderID(newOrderID),
	); err != nil {
		return MoveItemCommand{}, err
	}

	return cmd, nil
}

func (c MoveItemCommand) Validate() error {
	return c.guard.Validate(ErrMoveItemCommandIsNotConstructed)
}

func (c MoveItemCommand) FromTable() kernel.Table {
	return c.fromTable
}

func (c MoveItemCommand) ToTable() kernel.Table {
	return c.toTable
}

func (c MoveItemCommand) OrderTime() time.Time {
	return c.orderTime
}

func (c MoveItemCommand) ItemIndex() int {
	return c.itemIndex
}

func (c MoveItemCommand) NewOrderID() kernel.UUID {
	return c.newOrderID
}

func (c *MoveItemCommand) setTables(from, to string) error {
	fromTable, fromErr := kernel.NewTable(from)
	if fromErr != nil {
		fromErr = errs.NewValueIsInvalidErrorWithCause("fromTable", fromErr)
	}
	toTable, toErr := kernel.NewTable(to)
	if toErr != nil {
		toErr = errs.NewValueIsInvalidErrorWithCause("toTable", toErr)
	}
	if err := errors.Join(fromErr, toErr); err != nil {
		return err
	}
	if fromTable.IsEqual(toTable) {
		return services.ErrSameTable
	}

	c.fromTable = fromTable
	c.toTable = toTable
	return nil
}

func (c *MoveItemCommand) setOrderTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}
	c.orderTime = order.NormalizeTime(t)
	return nil
}

func (c *MoveItemCommand) setNewOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.newOrderID = id
	return nil
}
