// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used by the
// admin dashboard and for conditional responses (ETag generation) on the
// public lists.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
)

// Dashboard holds the counters shown on the admin landing page.
type Dashboard struct {
	PendingReviews int64 `json:"pending_reviews"`
	Subscribers    int64 `json:"subscribers"`
	UnreadContacts int64 `json:"unread_contacts"`
	GalleryImages  int64 `json:"gallery_images"`
}

// DashboardCounts runs one count per dashboard tile.
func DashboardCounts(ctx context.Context, db *gorm.DB) (Dashboard, error) {
	var d Dashboard
	var err error
	if d.PendingReviews, err = CountReviews(ctx, db, domain.ReviewPending); err != nil {
		return Dashboard{}, err
	}
	if d.Subscribers, err = CountSubscribers(ctx, db, ""); err != nil {
		return Dashboard{}, err
	}
	if d.UnreadContacts, err = CountContacts(ctx, db, true); err != nil {
		return Dashboard{}, err
	}
	if d.GalleryImages, err = CountContent[domain.GalleryImage](ctx, db); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

// ApprovedReviewsStats returns the number of approved reviews and the latest
// UpdatedAt among them (nil when there are none).
func ApprovedReviewsStats(ctx context.Context, db *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Review{}).Where("status = ?", domain.ReviewApproved)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
