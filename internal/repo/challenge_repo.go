// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// server-held arithmetic challenges of the public forms.
//
// A challenge is single-use. ClaimChallenge is an atomic
// UPDATE ... WHERE used = false, so of two concurrent submissions naming the
// same challenge exactly one wins.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
)

// CreateChallenge inserts a new challenge row.
func CreateChallenge(ctx context.Context, db *gorm.DB, ch *domain.Challenge) error {
	if ch.CreatedAt.IsZero() {
		ch.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(ch).Error
}

// GetOpenChallenge returns the challenge with the given ID if it belongs to
// form, is unused and has not expired at now. Otherwise it returns ErrNotFound.
func GetOpenChallenge(ctx context.Context, db *gorm.DB, id, form string, now time.Time) (*domain.Challenge, error) {
	var ch domain.Challenge
	err := db.WithContext(ctx).
		Where("id = ? AND form = ? AND used = ? AND expires_at > ?", id, form, false, now).
		First(&ch).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// ClaimChallenge marks an open challenge as used. It returns ErrNotFound when
// the challenge is missing, expired or already used.
func ClaimChallenge(ctx context.Context, db *gorm.DB, id string, now time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.Challenge{}).
		Where("id = ? AND used = ? AND expires_at > ?", id, false, now).
		Update("used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeChallenges deletes challenges that expired before now or were used and
// are older than usedBefore. It returns the number of rows removed.
func PurgeChallenges(ctx context.Context, db *gorm.DB, now, usedBefore time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at <= ? OR (used = ? AND created_at < ?)", now, true, usedBefore).
		Delete(&domain.Challenge{})
	return res.RowsAffected, res.Error
}
