package commands

import (
	"context"
)

// ClearAllOrdersCommandHandler archives every current order and empties the store
// in one transaction.
type ClearAllOrdersCommandHandler struct {
	uowFactory ArchivingUoWFactory
}

func NewClearAllOrdersCommandHandler(uowFactory ArchivingUoWFactory) ClearAllOrdersCommandHandler {
	return ClearAllOrdersCommandHandler{uowFactory: uowFactory}
}

func (h *ClearAllOrdersCommandHandler) Handle(ctx context.Context, cmd ClearAllOrdersCommand) error {
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

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	if err = archiveAndDelete(ctx, uow, orders, cmd.ArchivedAt()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
