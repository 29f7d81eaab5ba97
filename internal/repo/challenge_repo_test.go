package repo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/standupsite/promo-backend/internal/domain"
)

func TestChallenge_GetAndClaim(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	ch := &domain.Challenge{ID: "c1", Form: domain.FormSubscribe, OperandA: 3, OperandB: 4, ExpiresAt: now.Add(time.Minute)}
	if err := CreateChallenge(ctx, db, ch); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := GetOpenChallenge(ctx, db, "c1", domain.FormSubscribe, now)
	if err != nil || got.OperandA != 3 || got.OperandB != 4 {
		t.Fatalf("get: %+v (%v)", got, err)
	}
	if _, err := GetOpenChallenge(ctx, db, "c1", domain.FormReview, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong form must not match: %v", err)
	}

	if err := ClaimChallenge(ctx, db, "c1", now); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := ClaimChallenge(ctx, db, "c1", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second claim: %v", err)
	}
	if _, err := GetOpenChallenge(ctx, db, "c1", domain.FormSubscribe, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("used challenge must not be open: %v", err)
	}
}

func TestChallenge_Expired(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	ch := &domain.Challenge{ID: "old", Form: domain.FormContact, OperandA: 1, OperandB: 1, ExpiresAt: now.Add(-time.Second)}
	if err := CreateChallenge(ctx, db, ch); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := GetOpenChallenge(ctx, db, "old", domain.FormContact, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired get: %v", err)
	}
	if err := ClaimChallenge(ctx, db, "old", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired claim: %v", err)
	}
}

func TestChallenge_ConcurrentClaimSingleWinner(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	// One connection serializes the writers the way a single-row lock would.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := CreateChallenge(ctx, db, &domain.Challenge{ID: "race", Form: domain.FormSubscribe, OperandA: 2, OperandB: 2, ExpiresAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ClaimChallenge(ctx, db, "race", now) == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	if wins.Load() != 1 {
		t.Fatalf("winners = %d, want 1", wins.Load())
	}
}

func TestPurgeChallenges(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []*domain.Challenge{
		{ID: "expired", Form: "subscribe", OperandA: 1, OperandB: 1, ExpiresAt: now.Add(-time.Minute)},
		{ID: "used-old", Form: "subscribe", OperandA: 1, OperandB: 1, Used: true, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(time.Hour)},
		{ID: "fresh", Form: "subscribe", OperandA: 1, OperandB: 1, ExpiresAt: now.Add(time.Hour)},
	}
	for _, ch := range seed {
		if err := CreateChallenge(ctx, db, ch); err != nil {
			t.Fatalf("seed %s: %v", ch.ID, err)
		}
	}

	n, err := PurgeChallenges(ctx, db, now, now.Add(-time.Hour))
	if err != nil || n != 2 {
		t.Fatalf("purged %d (%v), want 2", n, err)
	}
	if _, err := GetOpenChallenge(ctx, db, "fresh", "subscribe", now); err != nil {
		t.Fatalf("fresh challenge purged: %v", err)
	}
}

func TestSessions(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	live := &domain.AdminSession{Token: "t-live", Email: "admin@example.com", ExpiresAt: now.Add(time.Hour)}
	dead := &domain.AdminSession{Token: "t-dead", Email: "admin@example.com", ExpiresAt: now.Add(-time.Hour)}
	for _, s := range []*domain.AdminSession{live, dead} {
		if err := CreateSession(ctx, db, s); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if _, err := GetSession(ctx, db, "t-live", now); err != nil {
		t.Fatalf("live session: %v", err)
	}
	if _, err := GetSession(ctx, db, "t-dead", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired session: %v", err)
	}

	if err := RevokeSession(ctx, db, "t-live"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := GetSession(ctx, db, "t-live", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("revoked session: %v", err)
	}

	n, err := PurgeSessions(ctx, db, now)
	if err != nil || n != 2 {
		t.Fatalf("purged %d (%v), want 2", n, err)
	}
}

func TestIdempotency_CreateGetPurge(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	rec := IdempotencyRecord{ClientID: "1.2.3.4", Scope: "subscribe", Key: "k1", Outcome: "accepted", Message: "ok", Status: 201}
	if _, err := CreateIdempotency(ctx, db, rec, time.Hour); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, rec, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate: %v", err)
	}

	got, err := GetIdempotency(ctx, db, "1.2.3.4", "subscribe", "k1", now)
	if err != nil || got.Outcome != "accepted" || got.Status != 201 {
		t.Fatalf("get: %+v (%v)", got, err)
	}
	if _, err := GetIdempotency(ctx, db, "1.2.3.4", "review", "k1", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other scope: %v", err)
	}
	if _, err := GetIdempotency(ctx, db, "1.2.3.4", "subscribe", "  ", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank key: %v", err)
	}

	n, err := PurgeIdempotency(ctx, db, now.Add(2*time.Hour))
	if err != nil || n != 1 {
		t.Fatalf("purged %d (%v)", n, err)
	}
}
