// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for reviews.
//
// Status changes are conditional updates (WHERE status = from) so two
// administrators acting on the same review cannot silently overwrite each
// other; the loser gets ErrNotFound.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
)

// CreateReview inserts r, assigning an ID and timestamps when unset.
func CreateReview(ctx context.Context, db *gorm.DB, r *domain.Review) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	return db.WithContext(ctx).Create(r).Error
}

func reviewsScope(db *gorm.DB, status domain.ReviewStatus) *gorm.DB {
	if status != "" {
		return db.Where("status = ?", status)
	}
	return db
}

// CountReviews counts reviews, optionally filtered by status ("" for all).
func CountReviews(ctx context.Context, db *gorm.DB, status domain.ReviewStatus) (int64, error) {
	var total int64
	err := reviewsScope(db.WithContext(ctx).Model(&domain.Review{}), status).Count(&total).Error
	return total, err
}

// ListReviewsPage returns reviews newest first, optionally filtered by status.
func ListReviewsPage(ctx context.Context, db *gorm.DB, status domain.ReviewStatus, offset, limit int) ([]domain.Review, error) {
	var out []domain.Review
	err := reviewsScope(db.WithContext(ctx), status).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetReview fetches a review by ID, or returns ErrNotFound.
func GetReview(ctx context.Context, db *gorm.DB, id string) (*domain.Review, error) {
	var r domain.Review
	if err := db.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReviewStatus moves review id from one status to another. It returns
// ErrNotFound when the review is missing or no longer in status from.
func UpdateReviewStatus(ctx context.Context, db *gorm.DB, id string, from, to domain.ReviewStatus) error {
	res := db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReview removes a review regardless of status.
func DeleteReview(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
