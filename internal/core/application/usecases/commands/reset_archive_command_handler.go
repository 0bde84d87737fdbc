package commands

import (
	"context"
)

type ResetArchiveCommandHandler struct {
	uowFactory ArchiveUoWFactory
}

func NewResetArchiveCommandHandler(uowFactory ArchiveUoWFactory) ResetArchiveCommandHandler {
	return ResetArchiveCommandHandler{uowFactory: uowFactory}
}

func (h *ResetArchiveCommandHandler) Handle(ctx context.Context, cmd ResetArchiveCommand) error {
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

	if err := uow.ArchiveRepository().Reset(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
