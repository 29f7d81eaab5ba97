// Package domain defines the persistence models for the promo site: mailing
// list subscribers, moderated reviews, contact messages, and the admin-managed
// content (gallery, videos, social posts, shows). These types are mapped with
// GORM and shared by the repository, service and HTTP layers.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber is a mailing-list signup created by the public subscribe form.
// Email is unique; a second signup with the same address is reported as a
// conflict by the store and never overwrites the existing row.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - FirstName / LastName: trimmed, 1..50 runes each.
//   - Email: unique, lower-cased before insert.
//   - Phone: free-form, 10..20 runes.
//   - CreatedAt: subscription time (UTC).
type Subscriber struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	FirstName string    `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName  string    `json:"last_name"  gorm:"type:varchar(50);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex:ux_subscribers_email"`
	Phone     string    `json:"phone"      gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Subscriber.
func (Subscriber) TableName() string { return "subscribers" }

// Review is a testimonial about the comedian. Public submissions start in
// ReviewPending; reviews added by an administrator start in ReviewApproved.
// Only approved reviews are shown on the public site.
type Review struct {
	ID           string       `json:"id"                  gorm:"type:char(36);primaryKey"`
	Name         string       `json:"name"                gorm:"type:varchar(100);not null"`
	Email        *string      `json:"email,omitempty"     gorm:"type:varchar(255)"`
	Relationship Relationship `json:"relationship"        gorm:"type:varchar(16);not null;check:relationship IN ('press','peer','audience')"`
	ReviewText   string       `json:"review_text"         gorm:"type:text;not null"`
	Status       ReviewStatus `json:"status"              gorm:"type:varchar(16);not null;default:'pending';index:idx_reviews_status_created,priority:1;check:status IN ('pending','approved','rejected')"`
	WhereSeen    *string      `json:"where_seen,omitempty" gorm:"type:varchar(100)"`
	HowFound     *string      `json:"how_found,omitempty"  gorm:"type:varchar(100)"`
	CreatedAt    time.Time    `json:"created_at"          gorm:"index:idx_reviews_status_created,priority:2"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// TableName returns the database table name for Review.
func (Review) TableName() string { return "reviews" }

// Contact is a message left through the public contact form.
type Contact struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(100);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read"    gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }

// AdminSession is an opaque bearer token handed out on admin login.
// Tokens are deleted on logout and ignored after ExpiresAt.
type AdminSession struct {
	Token     string         `gorm:"type:char(36);primaryKey"`
	Email     string         `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time      `gorm:"not null"`
	ExpiresAt time.Time      `gorm:"not null;index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the database table name for AdminSession.
func (AdminSession) TableName() string { return "admin_sessions" }
