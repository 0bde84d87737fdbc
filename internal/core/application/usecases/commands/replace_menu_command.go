package commands

import (
	"errors"

	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/guard"
)

var ErrReplaceMenuCommandIsNotConstructed = errors.New(
	"ReplaceMenuCommand must be created via NewReplaceMenuCommand constructor",
)

// ReplaceMenuCommand stores a whole menu document, replacing the current one.
type ReplaceMenuCommand struct {
	menu *menu.Menu

	guard guard.ConstructorGuard
}

// NewReplaceMenuCommand validates doc with the catalog's naming rules.
func NewReplaceMenuCommand(doc menu.Document) (ReplaceMenuCommand, error) {
	m, err := menu.FromDocument(doc)
	if err != nil {
		return ReplaceMenuCommand{}, err
	}
	return ReplaceMenuCommand{menu: m, guard: guard.NewConstructorGuard()}, nil
}

func (c ReplaceMenuCommand) Validate() error {
	return c.guard.Validate(ErrReplaceMenuCommandIsNotConstructed)
}

func (c ReplaceMenuCommand) Menu() *menu.Menu {
	return c.menu
}
