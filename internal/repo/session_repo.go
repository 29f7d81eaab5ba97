package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
)

// CreateSession stores an admin session.
func CreateSession(ctx context.Context, db *gorm.DB, s *domain.AdminSession) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(s).Error
}

// GetSession returns the live session for token, or ErrNotFound when it is
// unknown, revoked or expired at now.
func GetSession(ctx context.Context, db *gorm.DB, token string, now time.Time) (*domain.AdminSession, error) {
	var s domain.AdminSession
	err := db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// RevokeSession soft-deletes the session for token. Revoking an unknown token
// is not an error.
func RevokeSession(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).Where("token = ?", token).Delete(&domain.AdminSession{}).Error
}

// PurgeSessions permanently removes sessions that expired before now,
// including revoked ones.
func PurgeSessions(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Unscoped().
		Where("expires_at <= ? OR deleted_at IS NOT NULL", now).
		Delete(&domain.AdminSession{})
	return res.RowsAffected, res.Error
}
