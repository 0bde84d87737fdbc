package queries

import (
	"context"

	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
)

// GetTablesQueryHandler groups the current orders by table using the table
// count configured in the menu.
type GetTablesQueryHandler struct {
	orders  ports.OrderRepository
	menus   ports.MenuRepository
	grouper services.TableGrouper
}

func NewGetTablesQueryHandler(
	orders ports.OrderRepository,
	menus ports.MenuRepository,
	grouper services.TableGrouper,
) GetTablesQueryHandler {
	return GetTablesQueryHandler{orders: orders, menus: menus, grouper: grouper}
}

func (h GetTablesQueryHandler) Handle(ctx context.Context, query GetTablesQuery) ([]TableView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog, err := h.menus.Get(ctx)
	if err != nil {
		return nil, err
	}
	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := h.grouper.Group(all, catalog.TableCount())
	tables := make([]TableView, 0, len(groups))
	for _, group := range groups {
		view := TableView{
			Table:  group.Table.String(),
			Orders: make([]OrderView, 0, len(group.Orders)),
		}
		if !group.LatestTime.IsZero() {
			view.LatestTime = group.LatestTime.UnixMilli()
		}
		for _, o := range group.Orders {
			view.Orders = append(view.Orders, newOrderView(o))
		}
		tables = append(tables, view)
	}

	return tables, nil
}
