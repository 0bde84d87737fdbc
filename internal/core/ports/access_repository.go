package ports

import (
	"context"

	"pos/internal/core/domain/model/access"
)

// UserCodeRepository stores staff login codes.
type UserCodeRepository interface {
	// Add returns errs.ErrObjectAlreadyExists for a code that is already registered.
	Add(ctx context.Context, code access.UserCode) error

	// Delete returns errs.ErrObjectNotFound for an unknown code.
	Delete(ctx context.Context, code string) error

	// Get returns errs.ErrObjectNotFound for an unknown code.
	Get(ctx context.Context, code string) (access.UserCode, error)

	GetAll(ctx context.Context) ([]access.UserCode, error)
}

// SessionStore is an expiring token store. It lives outside any unit of work so
// that sessions survive independently of request handling and can be shared by
// several server instances through the database.
type SessionStore interface {
	// Issue creates a session for role with a fresh opaque token.
	Issue(ctx context.Context, role access.Role) (access.Session, error)

	// Validate returns the live session for token.
	// Returns errs.ErrObjectNotFound for unknown or expired tokens.
	Validate(ctx context.Context, token string) (access.Session, error)

	// Revoke ends a session. Revoking an unknown token succeeds.
	Revoke(ctx context.Context, token string) error

	// PurgeExpired deletes expired sessions and reports how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
