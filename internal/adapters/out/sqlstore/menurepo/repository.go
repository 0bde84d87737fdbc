// Package menurepo stores the menu as a single JSON document row.
package menurepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentID is the key of the only row of "menu_documents".
const documentID = 1

// DocumentDTO is the "menu_documents" row.
type DocumentDTO struct {
	ID       uint                              `gorm:"primaryKey;autoIncrement:false"`
	Document datatypes.JSONType[menu.Document] `gorm:"not null"`
}

func (DocumentDTO) TableName() string {
	return "menu_documents"
}

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Get returns a fresh menu with the default table count when none was saved.
func (r *GormMenuRepository) Get(ctx context.Context) (*menu.Menu, error) {
	var dto DocumentDTO
	if err := r.db.WithContext(ctx).First(&dto, documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.NewMenu(), nil
		}
		return nil, errs.NewStorageError("menu.get", err)
	}

	return menu.FromDocument(dto.Document.Data())
}

// Save upserts the document row.
func (r *GormMenuRepository) Save(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := DocumentDTO{
		ID:       documentID,
		Document: datatypes.NewJSONType(aggregate.Document()),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
	if err != nil {
		return errs.NewStorageError("menu.save", err)
	}
	return nil
}
