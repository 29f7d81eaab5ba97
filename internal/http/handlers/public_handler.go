// Public content HTTP handlers.
//
// This file exposes the read-only lists the public site renders:
//   - GET /reviews   (approved reviews, newest first, ETag support)
//   - GET /gallery   (gallery images in display order)
//   - GET /videos
//   - GET /social
//   - GET /shows     (active shows, upcoming first)
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/standupsite/promo-backend/internal/domain"
)

// PublicReview is an approved review as shown on the site. The reviewer's
// e-mail and survey answers stay private.
type PublicReview struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"               example:"The Comedy Beat"`
	Relationship      string    `json:"relationship"       example:"press"`
	RelationshipLabel string    `json:"relationship_label" example:"Press / Media"`
	ReviewText        string    `json:"review_text"        example:"A masterclass in crowd work."`
	CreatedAt         time.Time `json:"created_at"`
}

// ListReviewsResponse wraps the approved reviews.
type ListReviewsResponse struct {
	Reviews []PublicReview `json:"reviews"`
}

// ListGalleryResponse wraps the gallery images.
type ListGalleryResponse struct {
	Images []domain.GalleryImage `json:"images"`
}

// ListVideosResponse wraps the videos.
type ListVideosResponse struct {
	Videos []domain.Video `json:"videos"`
}

// ListSocialResponse wraps the social posts.
type ListSocialResponse struct {
	Posts []domain.SocialPost `json:"posts"`
}

// ListShowsResponse wraps the shows.
type ListShowsResponse struct {
	Shows []domain.Show `json:"shows"`
}

// ListReviews godoc
// @ID          listReviews
// @Summary     List approved reviews
// @Description Returns approved reviews, newest first. Supports If-None-Match.
// @Tags        Public
// @Produce     json
// @Param       If-None-Match  header  string  false  "ETag from a previous response"
// @Success     200  {object}  handlers.ListReviewsResponse
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /reviews [get]
func (h *Handlers) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if count, maxTS, err := h.reviewSvc.ApprovedStats(ctx); err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.UnixNano()
		}
		etag := fmt.Sprintf(`W/"reviews:%d:%d"`, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, err := h.reviewSvc.ListApproved(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	out := make([]PublicReview, 0, len(items))
	for _, r := range items {
		out = append(out, PublicReview{
			ID:                r.ID,
			Name:              r.Name,
			Relationship:      string(r.Relationship),
			RelationshipLabel: r.Relationship.Label(),
			ReviewText:        r.ReviewText,
			CreatedAt:         r.CreatedAt,
		})
	}
	ok(c, http.StatusOK, ListReviewsResponse{Reviews: out})
}

// ListGallery godoc
// @ID          listGallery
// @Summary     List gallery images
// @Tags        Public
// @Produce     json
// @Success     200  {object}  handlers.ListGalleryResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /gallery [get]
func (h *Handlers) ListGallery(c *gin.Context) {
	items, err := h.contentSvc.ListGallery(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListGalleryResponse{Images: nonNil(items)})
}

// ListVideos godoc
// @ID          listVideos
// @Summary     List videos
// @Tags        Public
// @Produce     json
// @Success     200  {object}  handlers.ListVideosResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /videos [get]
func (h *Handlers) ListVideos(c *gin.Context) {
	items, err := h.contentSvc.ListVideos(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListVideosResponse{Videos: nonNil(items)})
}

// ListSocial godoc
// @ID          listSocial
// @Summary     List social posts
// @Tags        Public
// @Produce     json
// @Success     200  {object}  handlers.ListSocialResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /social [get]
func (h *Handlers) ListSocial(c *gin.Context) {
	items, err := h.contentSvc.ListSocial(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListSocialResponse{Posts: nonNil(items)})
}

// ListShows godoc
// @ID          listShows
// @Summary     List upcoming shows
// @Description Active shows only, soonest first.
// @Tags        Public
// @Produce     json
// @Success     200  {object}  handlers.ListShowsResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /shows [get]
func (h *Handlers) ListShows(c *gin.Context) {
	items, err := h.contentSvc.ListUpcomingShows(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListShowsResponse{Shows: nonNil(items)})
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
