// Package access models staff login codes and the sessions issued for them.
package access

import (
	"errors"
	"strings"
	"time"

	"pos/internal/pkg/errs"
)

// DefaultSessionTTL is how long a session stays valid after login.
const DefaultSessionTTL = 30 * time.Minute

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleKitchen Role = "kitchen"
	RoleWaiter  Role = "waiter"
)

var (
	ErrUserCodeIsNotConstructed = errors.New("UserCode must be created via NewUserCode constructor")
	ErrSessionIsNotConstructed  = errors.New("Session must be created via NewSession constructor")
)

// ParseRole accepts a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	switch role {
	case RoleAdmin, RoleKitchen, RoleWaiter:
		return role, nil
	case "":
		return "", errs.NewValueIsRequiredError("role")
	default:
		return "", errs.NewValueIsInvalidError("role " + s)
	}
}

func (r Role) String() string {
	return string(r)
}

// UserCode is a login code shared with a member of staff.
type UserCode struct {
	code string
	role Role
}

func NewUserCode(code string, role Role) (UserCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return UserCode{}, errs.NewValueIsRequiredError("code")
	}
	if _, err := ParseRole(string(role)); err != nil {
		return UserCode{}, err
	}
	return UserCode{code: code, role: role}, nil
}

func (u UserCode) Validate() error {
	if u.code == "" {
		return ErrUserCodeIsNotConstructed
	}
	return nil
}

func (u UserCode) Code() string {
	return u.code
}

func (u UserCode) Role() Role {
	return u.role
}

// Session binds an opaque token to a role until it expires.
type Session struct {
	token     string
	role      Role
	expiresAt time.Time
}

func NewSession(token string, role Role, expiresAt time.Time) (Session, error) {
	if strings.TrimSpace(token) == "" {
		return Session{}, errs.NewValueIsRequiredError("token")
	}
	if expiresAt.IsZero() {
		return Session{}, errs.NewValueIsRequiredError("expiresAt")
	}
	return Session{token: token, role: role, expiresAt: expiresAt.UTC()}, nil
}

func (s Session) Validate() error {
	if s.token == "" {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s Session) Token() string {
	return s.token
}

func (s Session) Role() Role {
	return s.role
}

func (s Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// Allows reports whether the session's role may act as role. Admin may act as anyone.
func (s Session) Allows(role Role) bool {
	return s.role == RoleAdmin || s.role == role
}
