// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides generic CRUD helpers for the
// admin-managed content tables (gallery images, videos, social posts, shows)
// plus the show-specific queries.
//
// The helpers are generic over the model type; each model carries its own
// table name via TableName(). IDs are UUID strings assigned by the caller.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
)

// Content is the set of models the generic helpers accept.
type Content interface {
	domain.GalleryImage | domain.Video | domain.SocialPost | domain.Show
}

// ListContent returns every row of T ordered by display order, then newest.
func ListContent[T Content](ctx context.Context, db *gorm.DB) ([]T, error) {
	var out []T
	err := db.WithContext(ctx).
		Order("display_order asc").
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountContent returns the number of rows of T.
func CountContent[T Content](ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(new(T)).Count(&total).Error
	return total, err
}

// GetContent fetches a row of T by ID, or returns ErrNotFound.
func GetContent[T Content](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var v T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateContent inserts v.
func CreateContent[T Content](ctx context.Context, db *gorm.DB, v *T) error {
	return db.WithContext(ctx).Create(v).Error
}

// SaveContent writes every column of v (which must already exist).
func SaveContent[T Content](ctx context.Context, db *gorm.DB, id string, v *T) error {
	res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteContent removes the row of T with the given ID.
func DeleteContent[T Content](ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActiveShows returns active shows in calendar order.
func ListActiveShows(ctx context.Context, db *gorm.DB) ([]domain.Show, error) {
	var out []domain.Show
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date asc").
		Order("display_order asc").
		Find(&out).Error
	return out, err
}

// SetShowActive toggles a show's public visibility.
func SetShowActive(ctx context.Context, db *gorm.DB, id string, active bool) error {
	res := db.WithContext(ctx).
		Model(&domain.Show{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
