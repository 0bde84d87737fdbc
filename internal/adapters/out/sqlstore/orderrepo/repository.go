package orderrepo

import (
	"context"
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository bound to db, which is either the
// connection pool or the transaction of a unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order row and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate("orders.add", aggregate, err)
	}
	return nil
}

// Update rewrites the table label and replaces the item rows of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Update("customer", dto.Customer)
	if result.Error != nil {
		return translate("orders.update", aggregate, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return errs.NewStorageError("orders.update_items", err)
	}
	if len(dto.Items) == 0 {
		return nil
	}
	if err := db.Create(&dto.Items).Error; err != nil {
		return errs.NewStorageError("orders.update_items", err)
	}
	return nil
}

// Delete removes the order and its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&OrderItemDTO{}).Error; err != nil {
		return errs.NewStorageError("orders.delete_items", err)
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return errs.NewStorageError("orders.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStorageError("orders.get", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) FindByTableAndTime(
	ctx context.Context,
	table kernel.Table,
	placedAt time.Time,
) (*order.Order, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	millis := order.NormalizeTime(placedAt).UnixMilli()

	var dto OrderDTO
	err := r.withItems(ctx).
		Where("customer = ? AND placed_at = ?", table.String(), millis).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", table.String()+"@"+time.UnixMilli(millis).UTC().Format(time.RFC3339Nano))
		}
		return nil, errs.NewStorageError("orders.find_by_table_and_time", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetByTable(ctx context.Context, table kernel.Table) ([]*order.Order, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.withItems(ctx).
		Where("customer = ?", table.String()).
		Order("placed_at").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("orders.get_by_table", err)
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withItems(ctx).Order("placed_at").Order("customer").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("orders.get_all", err)
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// translate maps a unique index violation on (customer, placed_at) to
// errs.ErrObjectAlreadyExists. Requires gorm.Config.TranslateError.
func translate(op string, aggregate *order.Order, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsError("order", aggregate.Table().String())
	}
	return errs.NewStorageError(op, err)
}
