package archiverepo

import (
	"context"

	"pos/internal/core/domain/model/archive"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormArchiveRepository implements ports.ArchiveRepository using GORM.
type GormArchiveRepository struct {
	db *gorm.DB
}

func NewGormArchiveRepository(db *gorm.DB) *GormArchiveRepository {
	return &GormArchiveRepository{db: db}
}

// Append inserts entries in the given order.
func (r *GormArchiveRepository) Append(ctx context.Context, entries []archive.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewStorageError("archive.append", err)
	}
	return nil
}

func (r *GormArchiveRepository) GetAll(ctx context.Context) ([]archive.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("archive.get_all", err)
	}

	entries := make([]archive.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *GormArchiveRepository) Reset(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&EntryDTO{}).Error
	if err != nil {
		return errs.NewStorageError("archive.reset", err)
	}
	return nil
}
