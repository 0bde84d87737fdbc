package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/archive"
	"pos/internal/core/domain/model/order"
)

// ClearTableCommandHandler archives a table's orders and deletes them in one
// transaction. A table without orders is a successful no-op.
type ClearTableCommandHandler struct {
	uowFactory ArchivingUoWFactory
}

func NewClearTableCommandHandler(uowFactory ArchivingUoWFactory) ClearTableCommandHandler {
	return ClearTableCommandHandler{uowFactory: uowFactory}
}

func (h *ClearTableCommandHandler) Handle(ctx context.Context, cmd ClearTableCommand) error {
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

	orders, err := uow.OrderRepository().GetByTable(ctx, cmd.Table())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	if err = archiveAndDelete(ctx, uow, orders, cmd.ArchivedAt()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// archiveAndDelete appends snapshots of orders to the archive and then deletes
// them, both inside uow's transaction.
func archiveAndDelete(ctx context.Context, uow ArchivingUoW, orders []*order.Order, archivedAt time.Time) error {
	entries := make([]archive.Entry, 0, len(orders))
	for _, o := range orders {
		entry, err := archive.NewEntry(o, archivedAt)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	if err := uow.ArchiveRepository().Append(ctx, entries); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, o := range orders {
		if err := orderRepo.Delete(ctx, o.ID()); err != nil {
			return err
		}
	}
	return nil
}
