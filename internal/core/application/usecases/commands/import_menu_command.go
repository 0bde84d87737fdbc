package commands

import (
	"errors"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrImportMenuCommandIsNotConstructed = errors.New(
	"ImportMenuCommand must be created via NewImportMenuCommand constructor",
)

// ImportMenuCommand replaces the menu with one parsed from Category | Item |
// Ingredient | Add-on rows.
type ImportMenuCommand struct {
	rows [][]string

	guard guard.ConstructorGuard
}

func NewImportMenuCommand(rows [][]string) (ImportMenuCommand, error) {
	if len(rows) == 0 {
		return ImportMenuCommand{}, errs.NewValueIsRequiredError("rows")
	}
	return ImportMenuCommand{rows: rows, guard: guard.NewConstructorGuard()}, nil
}

func (c ImportMenuCommand) Validate() error {
	return c.guard.Validate(ErrImportMenuCommandIsNotConstructed)
}

func (c ImportMenuCommand) Rows() [][]string {
	return c.rows
}
