package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
)

// CreateContact stores a contact-form message as unread.
func CreateContact(ctx context.Context, db *gorm.DB, m *domain.Contact) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	m.IsRead = false
	return db.WithContext(ctx).Create(m).Error
}

// CountContacts counts messages; unreadOnly restricts to unread ones.
func CountContacts(ctx context.Context, db *gorm.DB, unreadOnly bool) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.Contact{})
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// ListContactsPage returns messages newest first.
func ListContactsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// MarkContactRead flags a message as read. Marking an already-read message is
// not an error; a missing one is ErrNotFound.
func MarkContactRead(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteContact removes a message by ID.
func DeleteContact(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Contact{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
