// Package domain defines the core persistence models for the application.
package domain

import "time"

// Idempotency records the outcome of a completed public submission, keyed by
// (client, scope, key). A retried POST carrying the same Idempotency-Key gets
// the recorded outcome back instead of running the submission gate again.
//
// Only successful outcomes (accepted or duplicate) are recorded; rejected
// attempts are meant to be corrected and resubmitted.
type Idempotency struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	ClientID  string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_client_scope_key,priority:1"`
	Scope     string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_client_scope_key,priority:2"`
	Key       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_client_scope_key,priority:3"`
	Outcome   string    `gorm:"type:TEXT NOT NULL"`
	Message   string    `gorm:"type:TEXT NOT NULL"`
	Status    int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
