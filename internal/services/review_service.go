// Package services – ReviewService
//
// ReviewService backs the public testimonials list and the admin moderation
// screen. Public submissions arrive through SubmissionService in the pending
// state; this service moves them between pending, approved and rejected
// (never back to pending), deletes them, and lets an administrator add a
// review directly, which is created approved and skips the antispam gate.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/antispam"
	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
	"github.com/standupsite/promo-backend/internal/utils"
)

// ReviewService provides moderation and listing of reviews.
type ReviewService struct {
	DB *gorm.DB
	// PublicLimit caps the number of approved reviews on the public site.
	PublicLimit int
}

// NewReviewService constructs a ReviewService.
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db, PublicLimit: 50}
}

// ReviewInput is an administrator-authored review.
type ReviewInput struct {
	Name         string  `json:"name"          binding:"required" example:"The Comedy Beat"`
	Email        *string `json:"email"`
	Relationship string  `json:"relationship"  binding:"required" example:"press"`
	ReviewText   string  `json:"review_text"   binding:"required"`
	WhereSeen    *string `json:"where_seen"`
	HowFound     *string `json:"how_found"`
}

// ListApproved returns the newest approved reviews for the public site.
func (s *ReviewService) ListApproved(ctx context.Context) ([]domain.Review, error) {
	limit := s.PublicLimit
	if limit <= 0 {
		limit = 50
	}
	return repo.ListReviewsPage(ctx, s.DB, domain.ReviewApproved, 0, limit)
}

// ApprovedStats returns the approved review count and the latest update
// time among them, for ETag generation on the public list.
func (s *ReviewService) ApprovedStats(ctx context.Context) (int64, *time.Time, error) {
	return repo.ApprovedReviewsStats(ctx, s.DB)
}

// ListPage returns a page of reviews filtered by status ("" for all).
func (s *ReviewService) ListPage(ctx context.Context, status string, page, pageSize int) ([]domain.Review, int64, error) {
	st := domain.ReviewStatus(status)
	if st != "" && !st.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	page, pageSize = utils.ClampPage(page, pageSize)

	total, err := repo.CountReviews(ctx, s.DB, st)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Review{}, 0, nil
	}
	items, err := repo.ListReviewsPage(ctx, s.DB, st, utils.Offset(page, pageSize), pageSize)
	return items, total, err
}

// SetStatus moves review id to next, enforcing the moderation transitions.
func (s *ReviewService) SetStatus(ctx context.Context, id, next string) (*domain.Review, error) {
	tr := otel.Tracer("services/ReviewService")
	ctx, span := tr.Start(ctx, "SetStatus", trace.WithAttributes(
		attribute.String("review.id", id),
		attribute.String("review.status", next),
	))
	defer span.End()

	to := domain.ReviewStatus(next)
	if !to.Valid() {
		return nil, ErrInvalidStatus
	}
	r, err := repo.GetReview(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if !r.Status.CanTransition(to) {
		return nil, ErrStatusTransition
	}
	if err := repo.UpdateReviewStatus(ctx, s.DB, id, r.Status, to); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Someone else moved or deleted it in between.
			return nil, ErrStatusTransition
		}
		return nil, err
	}
	r.Status = to
	return r, nil
}

// Delete removes a review in any status.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := repo.DeleteReview(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

// Create adds an approved review on behalf of an administrator. Field rules
// match the public form except for the display-permission checkbox.
func (s *ReviewService) Create(ctx context.Context, in ReviewInput) (*domain.Review, antispam.FieldErrors, error) {
	vals := antispam.Values{
		antispam.FieldName:         in.Name,
		antispam.FieldRelationship: in.Relationship,
		antispam.FieldReview:       in.ReviewText,
		antispam.FieldPermission:   true,
	}
	if in.Email != nil {
		vals[antispam.FieldEmail] = *in.Email
	}
	if in.WhereSeen != nil {
		vals[antispam.FieldWhereSeen] = *in.WhereSeen
	}
	if in.HowFound != nil {
		vals[antispam.FieldHowFound] = *in.HowFound
	}
	if res := antispam.ReviewSchema().Validate(vals); !res.Valid() {
		return nil, res.Errors, nil
	}

	var email *string
	if e := vals.String(antispam.FieldEmail); e != "" {
		e = NormalizeEmail(e)
		email = &e
	}
	r := &domain.Review{
		Name:         vals.String(antispam.FieldName),
		Email:        email,
		Relationship: domain.Relationship(vals.String(antispam.FieldRelationship)),
		ReviewText:   vals.String(antispam.FieldReview),
		Status:       domain.ReviewApproved,
		WhereSeen:    optional(vals.String(antispam.FieldWhereSeen)),
		HowFound:     optional(vals.String(antispam.FieldHowFound)),
	}
	if err := repo.CreateReview(ctx, s.DB, r); err != nil {
		return nil, nil, err
	}
	return r, nil, nil
}
