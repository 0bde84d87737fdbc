package commands

import (
	"context"

	"pos/internal/core/domain/model/menu"
)

// ImportMenuCommandHandler parses the rows and stores the resulting menu. Without
// a tableCount directive row the current table count is kept.
type ImportMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewImportMenuCommandHandler(uowFactory MenuUoWFactory) ImportMenuCommandHandler {
	return ImportMenuCommandHandler{uowFactory: uowFactory}
}

func (h *ImportMenuCommandHandler) Handle(ctx context.Context, cmd ImportMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	current, err := menuRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	imported, err := menu.ImportRows(cmd.Rows(), current.TableCount())
	if err != nil {
		return nil, err
	}

	if err = menuRepo.Save(ctx, imported); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return imported, nil
}
