package commands

import (
	"context"
	"errors"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// CreateOrderCommandHandler persists a new order after checking its table against
// the table count configured in the menu.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the table range, builds the aggregate and adds it in one
// transaction. A numeric table outside 1..tableCount fails with
// errs.ErrValueIsOutOfRange. When the table already has an order at the same
// millisecond the new order is placed on the next free millisecond.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog, err := uow.MenuRepository().Get(ctx)
	if err != nil {
		return err
	}
	if err = cmd.Table().CheckRange(catalog.TableCount()); err != nil {
		return err
	}

	orders := uow.OrderRepository()
	placedAt := cmd.PlacedAt()
	for {
		_, err = orders.FindByTableAndTime(ctx, cmd.Table(), placedAt)
		if errors.Is(err, errs.ErrObjectNotFound) {
			break
		}
		if err != nil {
			return err
		}
		placedAt = placedAt.Add(time.Millisecond)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Table(), placedAt, cmd.Items())
	if err != nil {
		return err
	}

	if err = orders.Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
