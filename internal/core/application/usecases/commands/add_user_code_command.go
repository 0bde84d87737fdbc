package commands

import (
	"errors"

	"pos/internal/core/domain/model/access"
	"pos/internal/pkg/guard"
)

var ErrAddUserCodeCommandIsNotConstructed = errors.New(
	"AddUserCodeCommand must be created via NewAddUserCodeCommand constructor",
)

// AddUserCodeCommand registers a login code for a role.
type AddUserCodeCommand struct {
	userCode access.UserCode

	guard guard.ConstructorGuard
}

func NewAddUserCodeCommand(code, role string) (AddUserCodeCommand, error) {
	parsedRole, roleErr := access.ParseRole(role)
	if roleErr != nil {
		return AddUserCodeCommand{}, roleErr
	}
	userCode, err := access.NewUserCode(code, parsedRole)
	if err != nil {
		return AddUserCodeCommand{}, err
	}
	return AddUserCodeCommand{userCode: userCode, guard: guard.NewConstructorGuard()}, nil
}

func (c AddUserCodeCommand) Validate() error {
	return c.guard.Validate(ErrAddUserCodeCommandIsNotConstructed)
}

func (c AddUserCodeCommand) UserCode() access.UserCode {
	return c.userCode
}
