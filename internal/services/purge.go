package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/repo"
)

// usedChallengeGrace keeps claimed or burned challenges around for a while
// so late retries still resolve to "challenge failed" rather than "unknown".
const usedChallengeGrace = time.Hour

// PurgeStats counts the rows removed by one Purge pass.
type PurgeStats struct {
	Challenges  int64
	Sessions    int64
	Idempotency int64
}

// Purge deletes expired challenges, admin sessions and idempotency records.
func Purge(ctx context.Context, db *gorm.DB, now time.Time) (PurgeStats, error) {
	var st PurgeStats
	var err error
	if st.Challenges, err = repo.PurgeChallenges(ctx, db, now, now.Add(-usedChallengeGrace)); err != nil {
		return st, err
	}
	if st.Sessions, err = repo.PurgeSessions(ctx, db, now); err != nil {
		return st, err
	}
	if st.Idempotency, err = repo.PurgeIdempotency(ctx, db, now); err != nil {
		return st, err
	}
	return st, nil
}

// RunPurger calls Purge every interval until ctx is done.
func RunPurger(ctx context.Context, db *gorm.DB, every time.Duration) {
	if every <= 0 {
		return
	}
	log := zerolog.Ctx(ctx)
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			st, err := Purge(ctx, db, now.UTC())
			if err != nil {
				log.Error().Err(err).Msg("purge failed")
				continue
			}
			log.Debug().
				Int64("challenges", st.Challenges).
				Int64("sessions", st.Sessions).
				Int64("idempotency", st.Idempotency).
				Msg("purged expired rows")
		}
	}
}
