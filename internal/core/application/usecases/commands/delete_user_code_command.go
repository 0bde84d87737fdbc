package commands

import (
	"context"
	"errors"
	"strings"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrDeleteUserCodeCommandIsNotConstructed = errors.New(
	"DeleteUserCodeCommand must be created via NewDeleteUserCodeCommand constructor",
)

type DeleteUserCodeCommand struct {
	code string

	guard guard.ConstructorGuard
}

func NewDeleteUserCodeCommand(code string) (DeleteUserCodeCommand, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return DeleteUserCodeCommand{}, errs.NewValueIsRequiredError("code")
	}
	return DeleteUserCodeCommand{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUserCodeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCodeCommandIsNotConstructed)
}

func (c DeleteUserCodeCommand) Code() string {
	return c.code
}

// DeleteUserCodeCommandHandler removes a login code. Sessions already issued for
// it stay valid until they expire.
type DeleteUserCodeCommandHandler struct {
	uowFactory AccessUoWFactory
}

func NewDeleteUserCodeCommandHandler(uowFactory AccessUoWFactory) DeleteUserCodeCommandHandler {
	return DeleteUserCodeCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteUserCodeCommandHandler) Handle(ctx context.Context, cmd DeleteUserCodeCommand) error {
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

	if err := uow.UserCodeRepository().Delete(ctx, cmd.Code()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
