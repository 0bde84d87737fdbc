package ports

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their line items.
type OrderRepository interface {
	// Add persists a new order with its items.
	// Returns errs.ErrObjectAlreadyExists when the table already has an order at the same time.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the table and the item list of an existing order.
	// Items are stored in the order the aggregate holds them.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order together with its items.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByTableAndTime retrieves the unique order placed at placedAt for table.
	// Returns errs.ErrObjectNotFound when there is none.
	FindByTableAndTime(ctx context.Context, table kernel.Table, placedAt time.Time) (*order.Order, error)

	// GetByTable retrieves the orders of one table in time order.
	GetByTable(ctx context.Context, table kernel.Table) ([]*order.Order, error)

	// GetAll retrieves every order, ascending by time and then by table label.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
