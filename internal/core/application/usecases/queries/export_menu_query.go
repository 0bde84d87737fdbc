package queries

import (
	"context"
	"errors"

	"pos/internal/core/ports"
	"pos/internal/pkg/guard"
)

var (
	ErrExportMenuQueryIsNotConstructed = errors.New(
		"ExportMenuQuery must be created via NewExportMenuQuery constructor",
	)
)

// ExportMenuQuery renders the menu as Category | Item | Ingredient | Add-on rows,
// the same layout ImportMenuCommand reads back.
type ExportMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewExportMenuQuery() ExportMenuQuery {
	return ExportMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q ExportMenuQuery) Validate() error {
	return q.guard.Validate(ErrExportMenuQueryIsNotConstructed)
}

type ExportMenuQueryHandler struct {
	menus ports.MenuRepository
}

func NewExportMenuQueryHandler(menus ports.MenuRepository) ExportMenuQueryHandler {
	return ExportMenuQueryHandler{menus: menus}
}

func (h ExportMenuQueryHandler) Handle(ctx context.Context, query ExportMenuQuery) ([][]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog, err := h.menus.Get(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.ExportRows(), nil
}
