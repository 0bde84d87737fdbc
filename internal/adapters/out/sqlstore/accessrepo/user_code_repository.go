package accessrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/access"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserCodeRepository implements ports.UserCodeRepository using GORM.
type GormUserCodeRepository struct {
	db *gorm.DB
}

func NewGormUserCodeRepository(db *gorm.DB) *GormUserCodeRepository {
	return &GormUserCodeRepository{db: db}
}

func (r *GormUserCodeRepository) Add(ctx context.Context, code access.UserCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := userCodeFromDomain(code)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("user code", code.Code())
		}
		return errs.NewStorageError("user_codes.add", err)
	}
	return nil
}

func (r *GormUserCodeRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Where("code = ?", code).Delete(&UserCodeDTO{})
	if result.Error != nil {
		return errs.NewStorageError("user_codes.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user code", code)
	}
	return nil
}

func (r *GormUserCodeRepository) Get(ctx context.Context, code string) (access.UserCode, error) {
	var dto UserCodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return access.UserCode{}, errs.NewObjectNotFoundError("user code", code)
		}
		return access.UserCode{}, errs.NewStorageError("user_codes.get", err)
	}
	return userCodeToDomain(dto)
}

// GetAll returns the codes sorted by code.
func (r *GormUserCodeRepository) GetAll(ctx context.Context) ([]access.UserCode, error) {
	var dtos []UserCodeDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("user_codes.get_all", err)
	}

	codes := make([]access.UserCode, 0, len(dtos))
	for _, dto := range dtos {
		code, err := userCodeToDomain(dto)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
