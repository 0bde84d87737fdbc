package commands

import (
	"context"
	"errors"

	"pos/internal/core/ports"
	"pos/internal/pkg/guard"
)

var ErrPurgeSessionsCommandIsNotConstructed = errors.New(
	"PurgeSessionsCommand must be created via NewPurgeSessionsCommand constructor",
)

// PurgeSessionsCommand drops expired sessions. It is issued periodically by the
// session purge job.
type PurgeSessionsCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeSessionsCommand() PurgeSessionsCommand {
	return PurgeSessionsCommand{guard: guard.NewConstructorGuard()}
}

func (c PurgeSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeSessionsCommandIsNotConstructed)
}

type PurgeSessionsCommandHandler struct {
	sessions ports.SessionStore
}

func NewPurgeSessionsCommandHandler(sessions ports.SessionStore) PurgeSessionsCommandHandler {
	return PurgeSessionsCommandHandler{sessions: sessions}
}

// Handle reports how many sessions were removed.
func (h *PurgeSessionsCommandHandler) Handle(ctx context.Context, cmd PurgeSessionsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.sessions.PurgeExpired(ctx)
}
