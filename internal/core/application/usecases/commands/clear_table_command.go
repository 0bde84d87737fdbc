package commands

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrClearTableCommandIsNotConstructed = errors.New(
	"ClearTableCommand must be created via NewClearTableCommand constructor",
)

// ClearTableCommand archives and removes every order of one table.
type ClearTableCommand struct { //nolint:recvcheck //using for validation
	table      kernel.Table
	archivedAt time.Time

	guard guard.ConstructorGuard
}

func NewClearTableCommand(table string, archivedAt time.Time) (ClearTableCommand, error) {
	cmd := ClearTableCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setTable(table),
		cmd.setArchivedAt(archivedAt),
	); err != nil {
		return ClearTableCommand{}, err
	}

	return cmd, nil
}

func (c ClearTableCommand) Validate() error {
	return c.guard.Validate(ErrClearTableCommandIsNotConstructed)
}

func (c ClearTableCommand) Table() kernel.Table {
	return c.table
}

// ArchivedAt selects the archive day the orders are filed under.
func (c ClearTableCommand) ArchivedAt() time.Time {
	return c.archivedAt
}

func (c *ClearTableCommand) setTable(label string) error {
	table, err := kernel.NewTable(label)
	if err != nil {
		return err
	}
	c.table = table
	return nil
}

func (c *ClearTableCommand) setArchivedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("archivedAt")
	}
	c.archivedAt = at
	return nil
}
