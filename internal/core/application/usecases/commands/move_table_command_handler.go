package commands

import (
	"context"

	"pos/internal/core/domain/services"
)

// MoveTableCommandHandler relabels the orders of one table to another in a single
// transaction. Orders colliding with a destination order placed at the same time
// are merged into it.
type MoveTableCommandHandler struct {
	uowFactory OrderUoWFactory
	relocator  services.OrderRelocator
}

func NewMoveTableCommandHandler(uowFactory OrderUoWFactory, relocator services.OrderRelocator) MoveTableCommandHandler {
	return MoveTableCommandHandler{
		uowFactory: uowFactory,
		relocator:  relocator,
	}
}

func (h *MoveTableCommandHandler) Handle(ctx context.Context, cmd MoveTableCommand) error {
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
	sources, err := orderRepo.GetByTable(ctx, cmd.FromTable())
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return nil
	}
	targets, err := orderRepo.GetByTable(ctx, cmd.ToTable())
	if err != nil {
		return err
	}

	result, err := h.relocator.MoveTable(sources, targets, cmd.ToTable())
	if err != nil {
		return err
	}

	for _, o := range result.Removed {
		if err = orderRepo.Delete(ctx, o.ID()); err != nil {
			return err
		}
	}
	for _, o := range result.Merged {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}
	for _, o := range result.Relabelled {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
