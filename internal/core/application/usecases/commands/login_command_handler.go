package commands

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/access"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// LoginCommandHandler looks the code up and issues a session for its role.
type LoginCommandHandler struct {
	uowFactory AccessUoWFactory
	sessions   ports.SessionStore
}

func NewLoginCommandHandler(uowFactory AccessUoWFactory, sessions ports.SessionStore) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, sessions: sessions}
}

// Handle returns ErrLoginCodeIsInvalid for an unknown code.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (access.Session, error) {
	if err := cmd.Validate(); err != nil {
		return access.Session{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return access.Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userCode, err := uow.UserCodeRepository().Get(ctx, cmd.Code())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return access.Session{}, ErrLoginCodeIsInvalid
	}
	if err != nil {
		return access.Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return access.Session{}, err
	}

	return h.sessions.Issue(ctx, userCode.Role())
}
