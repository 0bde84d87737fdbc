package commands

import (
	"errors"

	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrEditMenuCommandIsNotConstructed = errors.New(
	"EditMenuCommand must be created via NewEditMenuCommand constructor",
)

// EditMenuCommand applies one catalog edit to the stored menu. The edit is any
// Menu method call; its naming errors are returned unchanged by the handler.
//
// Example:
//
//	var created menu.Category
//	cmd, _ := NewEditMenuCommand(func(m *menu.Menu) (err error) {
//	    created, err = m.AddCategory("Drinks")
//	    return err
//	})
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // category name taken
//	}
type EditMenuCommand struct {
	apply func(*menu.Menu) error

	guard guard.ConstructorGuard
}

func NewEditMenuCommand(apply func(*menu.Menu) error) (EditMenuCommand, error) {
	if apply == nil {
		return EditMenuCommand{}, errs.NewValueIsRequiredError("apply")
	}
	return EditMenuCommand{apply: apply, guard: guard.NewConstructorGuard()}, nil
}

func (c EditMenuCommand) Validate() error {
	return c.guard.Validate(ErrEditMenuCommandIsNotConstructed)
}

// Apply runs the edit against m.
func (c EditMenuCommand) Apply(m *menu.Menu) error {
	return c.apply(m)
}
