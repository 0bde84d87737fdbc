package queries

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/menu"
	"pos/internal/core/ports"
	"pos/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery reads the whole menu document.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type GetMenuQueryHandler struct {
	menus ports.MenuRepository
}

func NewGetMenuQueryHandler(menus ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menus: menus}
}

// Handle returns the stored document, or an empty menu with the default table
// count when none was saved yet.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (menu.Document, error) {
	if err := query.Validate(); err != nil {
		return menu.Document{}, err
	}

	catalog, err := h.menus.Get(ctx)
	if err != nil {
		return menu.Document{}, err
	}
	return catalog.Document(), nil
}
