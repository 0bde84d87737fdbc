package commands

import (
	"context"
	"errors"
	"strings"

	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand revokes a session token.
type LogoutCommand struct {
	token string

	guard guard.ConstructorGuard
}

func NewLogoutCommand(token string) (LogoutCommand, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return LogoutCommand{}, errs.NewValueIsRequiredError("token")
	}
	return LogoutCommand{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Token() string {
	return c.token
}

type LogoutCommandHandler struct {
	sessions ports.SessionStore
}

func NewLogoutCommandHandler(sessions ports.SessionStore) LogoutCommandHandler {
	return LogoutCommandHandler{sessions: sessions}
}

func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.sessions.Revoke(ctx, cmd.Token())
}
