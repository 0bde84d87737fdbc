// Package orderrepo persists order aggregates and their line items with GORM.
// An order is one row in "orders"; its items are rows in "order_items" kept in
// insertion order by a position column.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO is the "orders" row. The (customer, placed_at) pair is unique: one
// order per table and creation time.
type OrderDTO struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Customer string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_orders_table_time"`
	PlacedAt int64          `gorm:"not null;uniqueIndex:idx_orders_table_time"`
	Items    []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Ingredients are stored as a JSON array.
type OrderItemDTO struct {
	ID          uint                        `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Position    int                         `gorm:"not null"`
	Item        string                      `gorm:"type:varchar(255);not null"`
	Quantity    int                         `gorm:"not null"`
	Ingredients datatypes.JSONSlice[string] `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()
	items := aggregate.Items()

	dto := OrderDTO{
		ID:       id,
		Customer: aggregate.Table().String(),
		PlacedAt: aggregate.PlacedAtMillis(),
		Items:    make([]OrderItemDTO, 0, len(items)),
	}
	for i, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:     id,
			Position:    i,
			Item:        item.Name(),
			Quantity:    item.Quantity(),
			Ingredients: datatypes.NewJSONSlice(item.Ingredients()),
		})
	}
	return dto
}

// toDomain restores the aggregate. Items must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	table, err := kernel.NewTable(dto.Customer)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Item, itemDTO.Quantity, itemDTO.Ingredients)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, table, time.UnixMilli(dto.PlacedAt), items)
}
