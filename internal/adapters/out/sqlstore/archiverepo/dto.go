// Package archiverepo stores snapshots of cleared orders, one row per order,
// keyed by the calendar day they were archived on.
package archiverepo

import (
	"time"

	"pos/internal/core/domain/model/archive"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EntryDTO is an "archived_orders" row. The auto-increment ID preserves append order.
type EntryDTO struct {
	ID         uint                         `gorm:"primaryKey;autoIncrement"`
	Day        string                       `gorm:"type:varchar(10);not null;index"`
	OrderID    uuid.UUID                    `gorm:"type:uuid;not null"`
	Customer   string                       `gorm:"type:varchar(64);not null"`
	PlacedAt   int64                        `gorm:"not null"`
	Items      datatypes.JSONSlice[ItemDTO] `gorm:"not null"`
	ArchivedAt int64                        `gorm:"not null"`
}

func (EntryDTO) TableName() string {
	return "archived_orders"
}

// ItemDTO is an archived order line, embedded as JSON in EntryDTO.Items.
type ItemDTO struct {
	Item        string   `json:"item"`
	Quantity    int      `json:"quantity"`
	Ingredients []string `json:"ingredients"`
}

func fromDomain(entry archive.Entry) EntryDTO {
	o := entry.Order()
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			Item:        item.Name(),
			Quantity:    item.Quantity(),
			Ingredients: item.Ingredients(),
		})
	}

	return EntryDTO{
		Day:        entry.Day(),
		OrderID:    o.ID().Bytes(),
		Customer:   o.Table().String(),
		PlacedAt:   o.PlacedAtMillis(),
		Items:      datatypes.NewJSONSlice(items),
		ArchivedAt: entry.ArchivedAt().UnixMilli(),
	}
}

func toDomain(dto EntryDTO) (archive.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return archive.Entry{}, err
	}
	table, err := kernel.NewTable(dto.Customer)
	if err != nil {
		return archive.Entry{}, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Item, itemDTO.Quantity, itemDTO.Ingredients)
		if itemErr != nil {
			return archive.Entry{}, itemErr
		}
		items = append(items, item)
	}

	o, err := order.RestoreOrder(id, table, time.UnixMilli(dto.PlacedAt), items)
	if err != nil {
		return archive.Entry{}, err
	}
	return archive.NewEntry(o, time.UnixMilli(dto.ArchivedAt))
}
