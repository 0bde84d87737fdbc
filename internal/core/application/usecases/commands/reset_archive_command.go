package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrResetArchiveCommandIsNotConstructed = errors.New(
	"ResetArchiveCommand must be created via NewResetArchiveCommand constructor",
)

// ResetArchiveCommand empties the archive of cleared orders.
type ResetArchiveCommand struct {
	guard guard.ConstructorGuard
}

func NewResetArchiveCommand() ResetArchiveCommand {
	return ResetArchiveCommand{guard: guard.NewConstructorGuard()}
}

func (c ResetArchiveCommand) Validate() error {
	return c.guard.Validate(ErrResetArchiveCommandIsNotConstructed)
}
