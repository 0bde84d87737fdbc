package accessrepo

import (
	"context"
	"errors"
	"time"

	"pos/internal/core/domain/model/access"
	"pos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSessionStore implements ports.SessionStore on the "sessions" table. It
// works on the connection pool directly, outside any unit of work.
type GormSessionStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewGormSessionStore creates a store issuing sessions valid for ttl. A
// non-positive ttl falls back to access.DefaultSessionTTL; a nil now uses time.Now.
func NewGormSessionStore(db *gorm.DB, ttl time.Duration, now func() time.Time) *GormSessionStore {
	if ttl <= 0 {
		ttl = access.DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &GormSessionStore{db: db, ttl: ttl, now: now}
}

func (s *GormSessionStore) Issue(ctx context.Context, role access.Role) (access.Session, error) {
	session, err := access.NewSession(uuid.NewString(), role, s.now().Add(s.ttl))
	if err != nil {
		return access.Session{}, err
	}

	dto := SessionDTO{
		Token:     session.Token(),
		Role:      session.Role().String(),
		ExpiresAt: session.ExpiresAt().UnixMilli(),
	}
	if err = s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return access.Session{}, errs.NewStorageError("sessions.issue", err)
	}
	return session, nil
}

func (s *GormSessionStore) Validate(ctx context.Context, token string) (access.Session, error) {
	if token == "" {
		return access.Session{}, errs.NewObjectNotFoundError("session", token)
	}

	var dto SessionDTO
	if err := s.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return access.Session{}, errs.NewObjectNotFoundError("session", token)
		}
		return access.Session{}, errs.NewStorageError("sessions.validate", err)
	}

	session, err := sessionToDomain(dto)
	if err != nil {
		return access.Session{}, err
	}
	if session.IsExpired(s.now()) {
		return access.Session{}, errs.NewObjectNotFoundError("session", token)
	}
	return session, nil
}

func (s *GormSessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.db.WithContext(ctx).Where("token = ?", token).Delete(&SessionDTO{}).Error; err != nil {
		return errs.NewStorageError("sessions.revoke", err)
	}
	return nil
}

func (s *GormSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", s.now().UnixMilli()).Delete(&SessionDTO{})
	if result.Error != nil {
		return 0, errs.NewStorageError("sessions.purge_expired", result.Error)
	}
	return result.RowsAffected, nil
}
