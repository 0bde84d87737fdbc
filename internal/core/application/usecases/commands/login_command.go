package commands

import (
	"errors"
	"strings"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	// ErrLoginCodeIsInvalid is returned for a code that matches no registered user code.
	ErrLoginCodeIsInvalid = errors.New("invalid login code")
)

// LoginCommand exchanges a staff login code for a session.
type LoginCommand struct {
	code string

	guard guard.ConstructorGuard
}

func NewLoginCommand(code string) (LoginCommand, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return LoginCommand{}, errs.NewValueIsRequiredError("code")
	}
	return LoginCommand{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Code() string {
	return c.code
}
