package commands

import (
	"context"
)

// EditMenuCommandHandler loads the menu, applies the edit and saves the document
// in one transaction, so concurrent edits no longer overwrite each other.
type EditMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewEditMenuCommandHandler(uowFactory MenuUoWFactory) EditMenuCommandHandler {
	return EditMenuCommandHandler{uowFactory: uowFactory}
}

func (h *EditMenuCommandHandler) Handle(ctx context.Context, cmd EditMenuCommand) error {
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

	menuRepo := uow.MenuRepository()
	catalog, err := menuRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = cmd.Apply(catalog); err != nil {
		return err
	}

	if err = menuRepo.Save(ctx, catalog); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
