package domain

import "time"

// Challenge is a server-held arithmetic problem issued to a public form.
// The operands never leave the server in a form that reveals the sum to a
// scraper; clients only see the question text and the ID.
//
// A challenge is usable once: it is marked Used when a submission claims it
// (after a correct answer) or when it is burned by a wrong answer or a bot
// trap hit. Rows past ExpiresAt are ignored and purged periodically.
type Challenge struct {
	ID        string    `json:"challenge_id" gorm:"type:char(36);primaryKey"`
	Form      string    `json:"form"         gorm:"type:varchar(16);not null"`
	OperandA  int       `json:"-"            gorm:"not null"`
	OperandB  int       `json:"-"            gorm:"not null"`
	Used      bool      `json:"-"            gorm:"not null;default:false"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"expires_at"   gorm:"not null;index"`
}

// TableName returns the database table name for Challenge.
func (Challenge) TableName() string { return "challenges" }

// Form names used to scope challenges and idempotency records.
const (
	FormSubscribe = "subscribe"
	FormReview    = "review"
	FormContact   = "contact"
)

// ValidForm reports whether f names one of the public submission forms.
func ValidForm(f string) bool {
	switch f {
	case FormSubscribe, FormReview, FormContact:
		return true
	}
	return false
}
