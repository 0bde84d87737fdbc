package commands

import (
	"context"
)

type ReplaceMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewReplaceMenuCommandHandler(uowFactory MenuUoWFactory) ReplaceMenuCommandHandler {
	return ReplaceMenuCommandHandler{uowFactory: uowFactory}
}

func (h *ReplaceMenuCommandHandler) Handle(ctx context.Context, cmd ReplaceMenuCommand) error {
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

	if err := uow.MenuRepository().Save(ctx, cmd.Menu()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
