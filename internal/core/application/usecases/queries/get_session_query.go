package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"pos/internal/core/domain/model/access"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrGetSessionQueryIsNotConstructed = errors.New(
		"GetSessionQuery must be created via NewGetSessionQuery constructor",
	)
)

// GetSessionQuery resolves a session token to the role it was issued for.
type GetSessionQuery struct {
	token string

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(token string) (GetSessionQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return GetSessionQuery{}, errs.NewValueIsRequiredError("token")
	}
	return GetSessionQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) Token() string {
	return q.token
}

type SessionView struct {
	Role      access.Role
	ExpiresAt time.Time
}

type GetSessionQueryHandler struct {
	sessions ports.SessionStore
}

func NewGetSessionQueryHandler(sessions ports.SessionStore) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessions: sessions}
}

// Handle returns errs.ErrObjectNotFound for unknown or expired tokens.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (SessionView, error) {
	if err := query.Validate(); err != nil {
		return SessionView{}, err
	}

	session, err := h.sessions.Validate(ctx, query.Token())
	if err != nil {
		return SessionView{}, err
	}
	return SessionView{Role: session.Role(), ExpiresAt: session.ExpiresAt()}, nil
}
