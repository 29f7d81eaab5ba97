package services

import (
	"context"
	"errors"
	"testing"

	"github.com/standupsite/promo-backend/internal/antispam"
	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
)

func seedReview(t *testing.T, s *ReviewService, status domain.ReviewStatus, name string) *domain.Review {
	t.Helper()
	r := &domain.Review{Name: name, Relationship: domain.RelationshipAudience, ReviewText: "Loved every minute.", Status: status}
	if err := repo.CreateReview(context.Background(), s.DB, r); err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return r
}

func TestReviewService_SetStatus_Transitions(t *testing.T) {
	s := NewReviewService(newSvcDB(t))
	ctx := context.Background()
	r := seedReview(t, s, domain.ReviewPending, "Sam")

	got, err := s.SetStatus(ctx, r.ID, "approved")
	if err != nil || got.Status != domain.ReviewApproved {
		t.Fatalf("approve: %v %+v", err, got)
	}
	if _, err := s.SetStatus(ctx, r.ID, "pending"); !errors.Is(err, ErrStatusTransition) {
		t.Fatalf("back to pending: want ErrStatusTransition, got %v", err)
	}
	if _, err := s.SetStatus(ctx, r.ID, "approved"); !errors.Is(err, ErrStatusTransition) {
		t.Fatalf("same status: want ErrStatusTransition, got %v", err)
	}
	if got, err := s.SetStatus(ctx, r.ID, "rejected"); err != nil || got.Status != domain.ReviewRejected {
		t.Fatalf("reject: %v %+v", err, got)
	}
	if _, err := s.SetStatus(ctx, r.ID, "published"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status: want ErrInvalidStatus, got %v", err)
	}
	if _, err := s.SetStatus(ctx, "missing", "approved"); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("missing: want ErrReviewNotFound, got %v", err)
	}
}

func TestReviewService_ListApprovedAndPage(t *testing.T) {
	s := NewReviewService(newSvcDB(t))
	ctx := context.Background()
	seedReview(t, s, domain.ReviewPending, "P1")
	seedReview(t, s, domain.ReviewApproved, "A1")
	seedReview(t, s, domain.ReviewApproved, "A2")
	seedReview(t, s, domain.ReviewRejected, "R1")

	pub, err := s.ListApproved(ctx)
	if err != nil || len(pub) != 2 {
		t.Fatalf("ListApproved: %v len=%d", err, len(pub))
	}
	for _, r := range pub {
		if r.Status != domain.ReviewApproved {
			t.Fatalf("non-approved review on public list: %+v", r)
		}
	}

	items, total, err := s.ListPage(ctx, "", 1, 3)
	if err != nil || total != 4 || len(items) != 3 {
		t.Fatalf("all page 1: err=%v total=%d len=%d", err, total, len(items))
	}
	items, total, err = s.ListPage(ctx, "", 2, 3)
	if err != nil || total != 4 || len(items) != 1 {
		t.Fatalf("all page 2: err=%v total=%d len=%d", err, total, len(items))
	}
	_, total, _ = s.ListPage(ctx, "pending", 1, 10)
	if total != 1 {
		t.Fatalf("pending total=%d", total)
	}
	if _, _, err := s.ListPage(ctx, "bogus", 1, 10); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("bogus filter: %v", err)
	}
}

func TestReviewService_Delete(t *testing.T) {
	s := NewReviewService(newSvcDB(t))
	r := seedReview(t, s, domain.ReviewRejected, "R")
	if err := s.Delete(context.Background(), r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(context.Background(), r.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestReviewService_Create_AdminIsApproved(t *testing.T) {
	s := NewReviewService(newSvcDB(t))
	email := "Editor@Paper.example"
	r, fields, err := s.Create(context.Background(), ReviewInput{
		Name:         "The Comedy Beat",
		Email:        &email,
		Relationship: "press",
		ReviewText:   "A sharp, fearless hour of stand-up.",
	})
	if err != nil || fields != nil {
		t.Fatalf("Create: err=%v fields=%v", err, fields)
	}
	if r.Status != domain.ReviewApproved || r.Email == nil || *r.Email != "editor@paper.example" {
		t.Fatalf("unexpected review: %+v", r)
	}

	_, fields, err = s.Create(context.Background(), ReviewInput{Name: "X", Relationship: "fan", ReviewText: "short"})
	if err != nil {
		t.Fatalf("Create invalid: %v", err)
	}
	if _, ok := fields[antispam.FieldRelationship]; !ok {
		t.Fatalf("expected relationship error, got %v", fields)
	}
	if _, ok := fields[antispam.FieldReview]; !ok {
		t.Fatalf("expected review length error, got %v", fields)
	}
	if _, ok := fields[antispam.FieldPermission]; ok {
		t.Fatalf("admin reviews must not need the permission checkbox")
	}
}
