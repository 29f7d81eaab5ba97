// Admin HTTP handlers.
//
// This file exposes the administrator endpoints (all under /admin, all but
// login behind a bearer token):
//   - POST   /admin/login                  (open a session)
//   - POST   /admin/logout                 (revoke the current token)
//   - GET    /admin/dashboard              (counters)
//   - GET    /admin/reviews                (paginated, ?status= filter)
//   - POST   /admin/reviews                (add an approved review)
//   - PUT    /admin/reviews/{id}/status    (approve / reject)
//   - DELETE /admin/reviews/{id}
//   - GET    /admin/subscribers            (paginated, ?search=)
//   - GET    /admin/subscribers/export     (CSV download)
//   - DELETE /admin/subscribers/{id}
//   - GET    /admin/contacts               (paginated)
//   - PUT    /admin/contacts/{id}/read
//   - DELETE /admin/contacts/{id}
package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/http/middleware"
	"github.com/standupsite/promo-backend/internal/services"
)

//
// DTOs
//

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// SetReviewStatusRequest moves a review to approved or rejected.
type SetReviewStatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved" enums:"approved,rejected"`
}

// ListAdminReviewsResponse is a page of reviews with every field.
type ListAdminReviewsResponse struct {
	Reviews    []domain.Review `json:"reviews"`
	Pagination Pagination      `json:"pagination"`
}

// ListSubscribersResponse is a page of subscribers.
type ListSubscribersResponse struct {
	Subscribers []domain.Subscriber `json:"subscribers"`
	Pagination  Pagination          `json:"pagination"`
}

// ListContactsResponse is a page of contact messages.
type ListContactsResponse struct {
	Contacts   []domain.Contact `json:"contacts"`
	Pagination Pagination       `json:"pagination"`
}

//
// Session
//

// Login godoc
// @ID          adminLogin
// @Summary     Admin login
// @Description Checks the configured admin credentials and returns a bearer token.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
// @Success     200  {object}  services.Session
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /admin/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password are required")
		return
	}
	sess, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid email or password")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	c.Header("Cache-Control", "no-store")
	ok(c, http.StatusOK, sess)
}

// Logout godoc
// @ID          adminLogout
// @Summary     Admin logout
// @Tags        Admin
// @Security    BearerAuth
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse
// @Router      /admin/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// Dashboard godoc
// @ID          adminDashboard
// @Summary     Dashboard counters
// @Tags        Admin
// @Security    BearerAuth
// @Produce     json
// @Success     200  {object}  repo.Dashboard
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /admin/dashboard [get]
func (h *Handlers) Dashboard(c *gin.Context) {
	d, err := h.contactSvc.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, d)
}

//
// Reviews
//

// AdminListReviews godoc
// @ID          adminListReviews
// @Summary     List reviews
// @Tags        Admin
// @Security    BearerAuth
// @Produce     json
// @Param       status     query  string  false  "Filter by status"  Enums(pending, approved, rejected)
// @Param       page       query  int     false  "Page number"       minimum(1) default(1)
// @Param       page_size  query  int     false  "Items per page"    minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.ListAdminReviewsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown status"
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /admin/reviews [get]
func (h *Handlers) AdminListReviews(c *gin.Context) {
	page, pageSize := clampPagination(c)
	items, total, err := h.reviewSvc.ListPage(c.Request.Context(), strings.TrimSpace(c.Query("status")), page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			fail(c, http.StatusBadRequest, ErrCodeInvalidStatus, "status must be one of: pending, approved, rejected")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListAdminReviewsResponse{Reviews: nonNil(items), Pagination: paginate(page, pageSize, total)})
}

// AdminCreateReview godoc
// @ID          adminCreateReview
// @Summary     Add a review
// @Description Adds a review directly; it is created approved and skips the antispam gate.
// @Tags        Admin
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body  body  services.ReviewInput  true  "Review"
// @Success     201  {object}  domain.Review
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     422  {object}  handlers.ErrorResponse  "Validation failure (see fields)"
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /admin/reviews [post]
func (h *Handlers) AdminCreateReview(c *gin.Context) {
	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, relationship and review_text are required")
		return
	}
	r, fields, err := h.reviewSvc.Create(c.Request.Context(), in)
	switch {
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	case len(fields) > 0:
		failFields(c, http.StatusUnprocessableEntity, ErrCodeValidationFailed, "Please correct the highlighted fields.", fields)
	default:
		ok(c, http.StatusCreated, r)
	}
}

// AdminSetReviewStatus godoc
// @ID          adminSetReviewStatus
// @Summary     Approve or reject a review
// @Description A review can move from pending to approved or rejected, and between approved and rejected; never back to pending.
// @Tags        Admin
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id    path  string  true  "Review ID (UUID)"  format(uuid)
// @Param       body  body  handlers.SetReviewStatusRequest  true  "New status"
// @Success     200  {object}  domain.Review
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Failure     409  {object}  handlers.ErrorResponse  "Transition not allowed"
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /admin/reviews/{id}/status [put]
func (h *Handlers) AdminSetReviewStatus(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req SetReviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status required")
		return
	}
	r, err := h.reviewSvc.SetStatus(c.Request.Context(), id, strings.TrimSpace(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			fail(c, http.StatusBadRequest, ErrCodeInvalidStatus, "status must be one of: approved, rejected")
		case errors.Is(err, services.ErrReviewNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "review not found")
		case errors.Is(err, services.ErrStatusTransition):
			fail(c, http.StatusConflict, ErrCodeConflict, "status transition not allowed")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, r)
}

// AdminDeleteReview godoc
// @ID          adminDeleteReview
// @Summary     Delete a review
// @Tags        Admin
// @Security    BearerAuth
// @Param       id  path  string  true  "Review ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /admin/reviews/{id} [delete]
func (h *Handlers) AdminDeleteReview(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.reviewSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "review not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

//
// Subscribers
//

// AdminListSubscribers godoc
// @ID          adminListSubscribers
// @Summary     List subscribers
// @Description Newest first. search matches first name, last name or e-mail.
// @Tags        Admin
// @Security    BearerAuth
// @Produce     json
// @Param       search     query  string  false  "Search text"
// @Param       page       query  int     false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int     false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.ListSubscribersResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /admin/subscribers [get]
func (h *Handlers) AdminListSubscribers(c *gin.Context) {
	page, pageSize := clampPagination(c)
	items, total, err := h.subscrSvc.ListPage(c.Request.Context(), strings.TrimSpace(c.Query("search")), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListSubscribersResponse{Subscribers: nonNil(items), Pagination: paginate(page, pageSize, total)})
}

// AdminExportSubscribers godoc
// @ID          adminExportSubscribers
// @Summary     Export subscribers as CSV
// @Description Columns: First Name, Last Name, Email, Phone, Date.
// @Tags        Admin
// @Security    BearerAuth
// @Produce     text/csv
// @Success     200  {string}  string  "CSV file"
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /admin/subscribers/export [get]
func (h *Handlers) AdminExportSubscribers(c *gin.Context) {
	// Buffer the file so a failed query still gets a JSON error.
	var buf bytes.Buffer
	n, err := h.subscrSvc.ExportCSV(c.Request.Context(), &buf)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeExportFailed, err.Error())
		return
	}
	middleware.LoggerFrom(c).Info().Int("rows", n).Msg("subscribers exported")
	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFilename(h.now())+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// AdminDeleteSubscriber godoc
// @ID          adminDeleteSubscriber
// @Summary     Delete a subscriber
// @Tags        Admin
// @Security    BearerAuth
// @Param       id  path  string  true  "Subscriber ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /admin/subscribers/{id} [delete]
func (h *Handlers) AdminDeleteSubscriber(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.subscrSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrSubscriberNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "subscriber not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

//
// Contacts
//

// AdminListContacts godoc
// @ID          adminListContacts
// @Summary     List contact messages
// @Tags        Admin
// @Security    BearerAuth
// @Produce     json
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.ListContactsResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /admin/contacts [get]
func (h *Handlers) AdminListContacts(c *gin.Context) {
	page, pageSize := clampPagination(c)
	items, total, err := h.contactSvc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListContactsResponse{Contacts: nonNil(items), Pagination: paginate(page, pageSize, total)})
}

// AdminMarkContactRead godoc
// @ID          adminMarkContactRead
// @Summary     Mark a contact message as read
// @Tags        Admin
// @Security    BearerAuth
// @Param       id  path  string  true  "Contact ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /admin/contacts/{id}/read [put]
func (h *Handlers) AdminMarkContactRead(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.contactSvc.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "contact message not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// AdminDeleteContact godoc
// @ID          adminDeleteContact
// @Summary     Delete a contact message
// @Tags        Admin
// @Security    BearerAuth
// @Param       id  path  string  true  "Contact ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     401  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /admin/contacts/{id} [delete]
func (h *Handlers) AdminDeleteContact(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.contactSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "contact message not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}
