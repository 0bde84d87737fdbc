package queries

import (
	"context"
	"errors"

	"pos/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListUserCodesQueryIsNotConstructed = errors.New(
		"ListUserCodesQuery must be created via NewListUserCodesQuery constructor",
	)
)

// ListUserCodesQuery lists the registered login codes with their roles.
type ListUserCodesQuery struct {
	guard guard.ConstructorGuard
}

func NewListUserCodesQuery() ListUserCodesQuery {
	return ListUserCodesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUserCodesQuery) Validate() error {
	return q.guard.Validate(ErrListUserCodesQueryIsNotConstructed)
}

type UserCodeView struct {
	Code string
	Role string
}

type ListUserCodesQueryHandler struct {
	db *gorm.DB
}

func NewListUserCodesQueryHandler(db *gorm.DB) ListUserCodesQueryHandler {
	return ListUserCodesQueryHandler{db: db}
}

// Handle returns codes sorted by code.
func (h ListUserCodesQueryHandler) Handle(ctx context.Context, query ListUserCodesQuery) ([]UserCodeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			role
		FROM user_codes
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make([]UserCodeView, 0)
	for rows.Next() {
		var code UserCodeView
		if err = rows.Scan(&code.Code, &code.Role); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}
