package commands

import (
	"errors"
	"time"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrClearAllOrdersCommandIsNotConstructed = errors.New(
	"ClearAllOrdersCommand must be created via NewClearAllOrdersCommand constructor",
)

// ClearAllOrdersCommand archives and removes every order in the store.
type ClearAllOrdersCommand struct {
	archivedAt time.Time

	guard guard.ConstructorGuard
}

func NewClearAllOrdersCommand(archivedAt time.Time) (ClearAllOrdersCommand, error) {
	if archivedAt.IsZero() {
		return ClearAllOrdersCommand{}, errs.NewValueIsRequiredError("archivedAt")
	}
	return ClearAllOrdersCommand{
		archivedAt: archivedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ClearAllOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearAllOrdersCommandIsNotConstructed)
}

func (c ClearAllOrdersCommand) ArchivedAt() time.Time {
	return c.archivedAt
}
