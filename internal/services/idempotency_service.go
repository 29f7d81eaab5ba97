// Package services – IdempotencyService
//
// Public form posts may carry an Idempotency-Key. Once a submission with a
// key has been accepted (or found to be a duplicate), the outcome is recorded
// under (client, route, key) so a retried request is answered from the record
// instead of running the gate again and spending a second challenge.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
)

// IdempotencyService stores and replays submission outcomes.
type IdempotencyService struct {
	DB  *gorm.DB
	TTL time.Duration
}

// NewIdempotencyService constructs an IdempotencyService; ttl <= 0 means 24h.
func NewIdempotencyService(db *gorm.DB, ttl time.Duration) *IdempotencyService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &IdempotencyService{DB: db, TTL: ttl}
}

// Seen reports whether a live record exists. It has the shape of
// middleware.IdempotencyLookup.
func (s *IdempotencyService) Seen(ctx context.Context, clientID, scope, key string, now time.Time) (bool, error) {
	_, err := repo.GetIdempotency(ctx, s.DB, clientID, scope, key, now)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repo.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Get returns the live record, or repo.ErrNotFound.
func (s *IdempotencyService) Get(ctx context.Context, clientID, scope, key string) (*domain.Idempotency, error) {
	return repo.GetIdempotency(ctx, s.DB, clientID, scope, key, time.Now().UTC())
}

// Record stores an outcome. A concurrent request that recorded the same key
// first wins; that is not an error.
func (s *IdempotencyService) Record(ctx context.Context, r repo.IdempotencyRecord) error {
	_, err := repo.CreateIdempotency(ctx, s.DB, r, s.TTL)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}
