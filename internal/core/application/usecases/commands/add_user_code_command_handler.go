package commands

import (
	"context"
)

// AddUserCodeCommandHandler stores a new login code. A code that is already
// registered fails with errs.ErrObjectAlreadyExists.
type AddUserCodeCommandHandler struct {
	uowFactory AccessUoWFactory
}

func NewAddUserCodeCommandHandler(uowFactory AccessUoWFactory) AddUserCodeCommandHandler {
	return AddUserCodeCommandHandler{uowFactory: uowFactory}
}

func (h *AddUserCodeCommandHandler) Handle(ctx context.Context, cmd AddUserCodeCommand) error {
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

	if err := uow.UserCodeRepository().Add(ctx, cmd.UserCode()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
