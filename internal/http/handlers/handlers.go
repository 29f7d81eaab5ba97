// Package handlers provides the HTTP handlers of the promo site API.
//
// This file declares the service contracts the handlers depend on, the
// Handlers aggregate, and small helpers shared by the public and admin
// endpoints (pagination and path IDs).
//
// Handlers are transport-thin: they bind and check input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/standupsite/promo-backend/internal/antispam"
	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
	"github.com/standupsite/promo-backend/internal/services"
	"github.com/standupsite/promo-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// SubmissionService runs the gated public forms.
type SubmissionService interface {
	// IssueChallenge stores a new challenge for form.
	IssueChallenge(ctx context.Context, form string) (*services.ChallengeView, error)
	// Submit runs one form post through the gate.
	Submit(ctx context.Context, sub services.Submission) (*services.SubmissionResult, error)
}

// IdempotencyStore keeps completed submission outcomes for replay.
type IdempotencyStore interface {
	Get(ctx context.Context, clientID, scope, key string) (*domain.Idempotency, error)
	Record(ctx context.Context, r repo.IdempotencyRecord) error
}

// ReviewService lists and moderates reviews.
type ReviewService interface {
	ListApproved(ctx context.Context) ([]domain.Review, error)
	ApprovedStats(ctx context.Context) (int64, *time.Time, error)
	ListPage(ctx context.Context, status string, page, pageSize int) ([]domain.Review, int64, error)
	SetStatus(ctx context.Context, id, next string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	Create(ctx context.Context, in services.ReviewInput) (*domain.Review, antispam.FieldErrors, error)
}

// SubscriberService lists, deletes and exports mailing-list subscribers.
type SubscriberService interface {
	ListPage(ctx context.Context, search string, page, pageSize int) ([]domain.Subscriber, int64, error)
	Delete(ctx context.Context, id string) error
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
}

// ContactService manages contact messages and the dashboard counters.
type ContactService interface {
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Dashboard(ctx context.Context) (repo.Dashboard, error)
}

// ContentService manages gallery images, videos, social posts and shows.
type ContentService interface {
	ListGallery(ctx context.Context) ([]domain.GalleryImage, error)
	CreateGallery(ctx context.Context, in services.GalleryInput) (*domain.GalleryImage, error)
	UpdateGallery(ctx context.Context, id string, in services.GalleryInput) (*domain.GalleryImage, error)
	DeleteGallery(ctx context.Context, id string) error

	ListVideos(ctx context.Context) ([]domain.Video, error)
	CreateVideo(ctx context.Context, in services.VideoInput) (*domain.Video, error)
	UpdateVideo(ctx context.Context, id string, in services.VideoInput) (*domain.Video, error)
	DeleteVideo(ctx context.Context, id string) error

	ListSocial(ctx context.Context) ([]domain.SocialPost, error)
	CreateSocial(ctx context.Context, in services.SocialInput) (*domain.SocialPost, error)
	UpdateSocial(ctx context.Context, id string, in services.SocialInput) (*domain.SocialPost, error)
	DeleteSocial(ctx context.Context, id string) error

	ListShows(ctx context.Context) ([]domain.Show, error)
	ListUpcomingShows(ctx context.Context) ([]domain.Show, error)
	CreateShow(ctx context.Context, in services.ShowInput) (*domain.Show, error)
	UpdateShow(ctx context.Context, id string, in services.ShowInput) (*domain.Show, error)
	SetShowActive(ctx context.Context, id string, active bool) error
	DeleteShow(ctx context.Context, id string) error
}

// AuthService opens and closes admin sessions.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Logout(ctx context.Context, token string) error
}

//
// Handler wiring
//

// Services bundles the dependencies of Handlers. Tests may leave the ones
// they do not exercise nil.
type Services struct {
	Submissions SubmissionService
	Idempotency IdempotencyStore
	Reviews     ReviewService
	Subscribers SubscriberService
	Contacts    ContactService
	Content     ContentService
	Auth        AuthService
}

// Handlers groups the public, admin and submission endpoints.
type Handlers struct {
	subSvc     SubmissionService
	idem       IdempotencyStore
	reviewSvc  ReviewService
	subscrSvc  SubscriberService
	contactSvc ContactService
	contentSvc ContentService
	authSvc    AuthService

	inflight *inflight
	now      func() time.Time
}

// New constructs a Handlers bound to the given services.
func New(s Services) *Handlers {
	return &Handlers{
		subSvc:     s.Submissions,
		idem:       s.Idempotency,
		reviewSvc:  s.Reviews,
		subscrSvc:  s.Subscribers,
		contactSvc: s.Contacts,
		contentSvc: s.Content,
		authSvc:    s.Auth,
		inflight:   newInflight(),
		now:        time.Now,
	}
}

//
// Shared DTOs and helpers
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// clampPagination parses and bounds the page and page_size query params.
func clampPagination(c *gin.Context) (page, pageSize int) {
	return utils.ClampPage(
		utils.AtoiDefault(c.Query("page"), 1),
		utils.AtoiDefault(c.Query("page_size"), utils.DefaultPageSize),
	)
}

func paginate(page, pageSize int, total int64) Pagination {
	totalPages := utils.TotalPages(total, pageSize)
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// pathID returns the :id path parameter, or aborts with 400 when it is not
// a UUID.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a UUID")
		return "", false
	}
	return id, true
}
