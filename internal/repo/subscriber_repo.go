// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for mailing-list
// subscribers.
//
// Email is unique. CreateSubscriber reports a second signup for the same
// address as ErrDuplicate and leaves the existing row untouched.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
)

// CreateSubscriber inserts s, assigning an ID and CreatedAt when unset.
// A unique violation on email is returned as ErrDuplicate.
func CreateSubscriber(ctx context.Context, db *gorm.DB, s *domain.Subscriber) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// subscriberSearch matches search case-insensitively against first name,
// last name or email. An empty search matches everything.
func subscriberSearch(db *gorm.DB, search string) *gorm.DB {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return db
	}
	like := "%" + strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(search) + "%"
	return db.Where(
		`LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
		like, like, like,
	)
}

// CountSubscribers returns the number of subscribers matching search.
func CountSubscribers(ctx context.Context, db *gorm.DB, search string) (int64, error) {
	var total int64
	err := subscriberSearch(db.WithContext(ctx).Model(&domain.Subscriber{}), search).Count(&total).Error
	return total, err
}

// ListSubscribersPage returns subscribers matching search, newest first.
func ListSubscribersPage(ctx context.Context, db *gorm.DB, search string, offset, limit int) ([]domain.Subscriber, error) {
	var out []domain.Subscriber
	err := subscriberSearch(db.WithContext(ctx), search).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListAllSubscribers returns every subscriber newest first (used for export).
func ListAllSubscribers(ctx context.Context, db *gorm.DB) ([]domain.Subscriber, error) {
	var out []domain.Subscriber
	err := db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

// DeleteSubscriber removes a subscriber by ID, or returns ErrNotFound.
func DeleteSubscriber(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Subscriber{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
