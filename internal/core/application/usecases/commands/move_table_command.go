package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrMoveTableCommandIsNotConstructed = errors.New(
	"MoveTableCommand must be created via NewMoveTableCommand constructor",
)

// MoveTableCommand moves every order of fromTable to toTable.
type MoveTableCommand struct { //nolint:recvcheck //using for validation
	fromTable kernel.Table
	toTable   kernel.Table

	guard guard.ConstructorGuard
}

// NewMoveTableCommand rejects missing tables and identical source and destination.
func NewMoveTableCommand(fromTable, toTable string) (MoveTableCommand, error) {
	cmd := MoveTableCommand{guard: guard.NewConstructorGuard()}

	from, fromErr := kernel.NewTable(fromTable)
	if fromErr != nil {
		fromErr = errs.NewValueIsInvalidErrorWithCause("fromTable", fromErr)
	}
	to, toErr := kernel.NewTable(toTable)
	if toErr != nil {
		toErr = errs.NewValueIsInvalidErrorWithCause("toTable", toErr)
	}
	if err := errors.Join(fromErr, toErr); err != nil {
		return MoveTableCommand{}, err
	}
	if from.IsEqual(to) {
		return MoveTableCommand{}, services.ErrSameTable
	}

	cmd.fromTable = from
	cmd.toTable = to
	return cmd, nil
}

func (c MoveTableCommand) Validate() error {
	return c.guard.Validate(ErrMoveTableCommandIsNotConstructed)
}

func (c MoveTableCommand) FromTable() kernel.Table {
	return c.fromTable
}

func (c MoveTableCommand) ToTable() kernel.Table {
	return c.toTable
}
