package queries

import (
	"context"

	"pos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads orders and their items with one joined query.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns orders ascending by time, ties broken by table label, each with
// its items in insertion order. An empty store yields an empty slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer,
			o.placed_at,
			i.item,
			i.quantity,
			i.ingredients
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		ORDER BY o.placed_at, o.customer, o.id, i.position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			customer    string
			placedAt    int64
			item        OrderItemView
			ingredients datatypes.JSONSlice[string]
		)
		if err = rows.Scan(&id, &customer, &placedAt, &item.Item, &item.Quantity, &ingredients); err != nil {
			return nil, err
		}

		item.Ingredients = []string(ingredients)
		if item.Ingredients == nil {
			item.Ingredients = []string{}
		}

		last := len(orders) - 1
		if last >= 0 && orders[last].ID.Bytes() == id {
			orders[last].Items = append(orders[last].Items, item)
			continue
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orders = append(orders, OrderView{
			ID:       orderID,
			Customer: customer,
			Time:     placedAt,
			Items:    []OrderItemView{item},
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
