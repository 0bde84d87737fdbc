package commands

import (
	"context"
	"errors"

	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// MoveItemCommandHandler relocates one order line between tables inside a single
// transaction: the removal from the source, the deletion of an emptied source
// and the insertion at the destination commit together.
type MoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
	relocator  services.OrderRelocator
}

func NewMoveItemCommandHandler(uowFactory OrderUoWFactory, relocator services.OrderRelocator) MoveItemCommandHandler {
	return MoveItemCommandHandler{
		uowFactory: uowFactory,
		relocator:  relocator,
	}
}

// Handle fails with errs.ErrObjectNotFound when no order exists at
// (fromTable, orderTime) or the item index is out of bounds, and with
// errs.ErrValueIsOutOfRange when a numeric destination exceeds the table count.
func (h *MoveItemCommandHandler) Handle(ctx context.Context, cmd MoveItemCommand) error {
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
	if err = cmd.ToTable().CheckRange(catalog.TableCount()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	source, err := orderRepo.FindByTableAndTime(ctx, cmd.FromTable(), cmd.OrderTime())
	if err != nil {
		return err
	}

	target, err := orderRepo.FindByTableAndTime(ctx, cmd.ToTable(), cmd.OrderTime())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	result, err := h.relocator.MoveItem(source, target, cmd.ToTable(), cmd.NewOrderID(), cmd.ItemIndex())
	if err != nil {
		return err
	}

	if err = h.persist(ctx, orderRepo, result); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *MoveItemCommandHandler) persist(ctx context.Context, repo ports.OrderRepository, result services.MoveItemResult) error {
	var err error
	if result.SourceEmptied {
		err = repo.Delete(ctx, result.Source.ID())
	} else {
		err = repo.Update(ctx, result.Source)
	}
	if err != nil {
		return err
	}

	if result.TargetCreated {
		return repo.Add(ctx, result.Target)
	}
	return repo.Update(ctx, result.Target)
}
