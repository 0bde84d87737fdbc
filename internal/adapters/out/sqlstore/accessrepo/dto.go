// Package accessrepo persists staff login codes and the sessions issued for them.
package accessrepo

import (
	"time"

	"pos/internal/core/domain/model/access"
)

// UserCodeDTO is a "user_codes" row.
type UserCodeDTO struct {
	Code string `gorm:"type:varchar(64);primaryKey"`
	Role string `gorm:"type:varchar(16);not null"`
}

func (UserCodeDTO) TableName() string {
	return "user_codes"
}

// SessionDTO is a "sessions" row. ExpiresAt is Unix milliseconds.
type SessionDTO struct {
	Token     string `gorm:"type:varchar(64);primaryKey"`
	Role      string `gorm:"type:varchar(16);not null"`
	ExpiresAt int64  `gorm:"not null;index"`
}

func (SessionDTO) TableName() string {
	return "sessions"
}

func userCodeFromDomain(code access.UserCode) UserCodeDTO {
	return UserCodeDTO{Code: code.Code(), Role: code.Role().String()}
}

func userCodeToDomain(dto UserCodeDTO) (access.UserCode, error) {
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return access.UserCode{}, err
	}
	return access.NewUserCode(dto.Code, role)
}

func sessionToDomain(dto SessionDTO) (access.Session, error) {
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return access.Session{}, err
	}
	return access.NewSession(dto.Token, role, time.UnixMilli(dto.ExpiresAt))
}
