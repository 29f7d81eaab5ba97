// Submission HTTP handlers.
//
// This file exposes the gated public forms:
//   - GET  /challenge?form=...   (issue an arithmetic challenge)
//   - POST /subscribe            (footer mailing-list form)
//   - POST /reviews              (submit a review for moderation)
//   - POST /contact              (contact form)
//
// Every post carries the challenge it answers (challenge_id,
// challenge_answer) and the honeypot input "website", which humans never see
// and so never fill in. The response always names the outcome and, unless the
// store failed to issue one, the challenge to show for the next attempt.
//
// Idempotency:
// If the client supplies an Idempotency-Key and a completed outcome exists for
// (client, route, key), the recorded outcome is returned with
// `Idempotency-Replayed: true` and the gate does not run again. A second
// request with the same key while the first is still running gets 409.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/standupsite/promo-backend/internal/antispam"
	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/http/middleware"
	"github.com/standupsite/promo-backend/internal/repo"
	"github.com/standupsite/promo-backend/internal/services"
)

//
// DTOs
//

// ChallengeAnswer accepts the answer as any JSON value and hands it to the
// gate as text. Strings and numbers keep their value; booleans, objects and
// arrays keep their raw JSON, which never checks as a sum, so they fail the
// challenge like any other wrong answer.
type ChallengeAnswer string

// UnmarshalJSON implements json.Unmarshaler.
func (a *ChallengeAnswer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = ChallengeAnswer(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err == nil {
			*a = ChallengeAnswer(n.String())
			return nil
		}
		*a = ChallengeAnswer(b)
	}
	return nil
}

// SubscribeRequest is the JSON payload of the subscribe form.
type SubscribeRequest struct {
	FirstName       string          `json:"first_name"       example:"Ana"`
	LastName        string          `json:"last_name"        example:"Lopez"`
	Email           string          `json:"email"            example:"ana@example.com"`
	Phone           string          `json:"phone"            example:"555-123-4567"`
	ChallengeID     string          `json:"challenge_id"     example:"0b6e9d0c-8d52-4c55-9b43-7f9f2c1b0e11"`
	ChallengeAnswer ChallengeAnswer `json:"challenge_answer" swaggertype:"string" example:"7"`
	// Website is the honeypot; leave it empty.
	Website string `json:"website" example:""`
}

// ReviewRequest is the JSON payload of the submit-review form.
type ReviewRequest struct {
	Name            string          `json:"name"             example:"Sam"`
	Email           string          `json:"email"            example:"sam@example.com"`
	Relationship    string          `json:"relationship"     example:"audience" enums:"press,peer,audience"`
	WhereSeen       string          `json:"where_seen"       example:"Edinburgh Fringe"`
	HowFound        string          `json:"how_found"        example:"Instagram"`
	Review          string          `json:"review"           example:"Funniest set I have seen this year."`
	Permission      bool            `json:"permission"       example:"true"`
	ChallengeID     string          `json:"challenge_id"`
	ChallengeAnswer ChallengeAnswer `json:"challenge_answer" swaggertype:"string"`
	Website         string          `json:"website"`
}

// ContactRequest is the JSON payload of the contact form.
type ContactRequest struct {
	Name            string          `json:"name"             example:"Jordan"`
	Email           string          `json:"email"            example:"jordan@example.com"`
	Message         string          `json:"message"          example:"Would you headline our charity night?"`
	ChallengeID     string          `json:"challenge_id"`
	ChallengeAnswer ChallengeAnswer `json:"challenge_answer" swaggertype:"string"`
	Website         string          `json:"website"`
}

// SubmissionResponse reports the gate outcome of a public form post.
//
// Outcome is one of accepted, rejected_duplicate, rejected_bot,
// rejected_challenge, rejected_validation, rejected_store_error. Rejections
// also carry request_id and a stable code like the error envelope.
type SubmissionResponse struct {
	RequestID   string                  `json:"request_id,omitempty"`
	Code        string                  `json:"code,omitempty"    example:"challenge_failed"`
	Outcome     string                  `json:"outcome"           example:"accepted"`
	Message     string                  `json:"message"           example:"You're in! You'll be the first to know about shows in your area."`
	Fields      map[string]string       `json:"fields,omitempty"`
	ClearFields bool                    `json:"clear_fields"`
	ClearAnswer bool                    `json:"clear_answer"`
	Challenge   *services.ChallengeView `json:"challenge,omitempty"`
}

//
// Outcome mapping
//

// outcomeStatus maps a gate state to the HTTP status and error code.
func outcomeStatus(s antispam.State) (int, string) {
	switch s {
	case antispam.Accepted:
		return http.StatusCreated, ""
	case antispam.RejectedDuplicate:
		return http.StatusOK, ""
	case antispam.RejectedBot:
		return http.StatusBadRequest, ErrCodeBotDetected
	case antispam.RejectedChallenge:
		return http.StatusBadRequest, ErrCodeChallengeFailed
	case antispam.RejectedValidation:
		return http.StatusUnprocessableEntity, ErrCodeValidationFailed
	case antispam.RejectedStoreError:
		return http.StatusServiceUnavailable, ErrCodeStoreUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternal
	}
}

//
// In-flight guard
//

// inflight tracks idempotency keys whose submission is still running.
type inflight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInflight() *inflight { return &inflight{keys: map[string]struct{}{}} }

func (f *inflight) acquire(k string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.keys[k]; busy {
		return false
	}
	f.keys[k] = struct{}{}
	return true
}

func (f *inflight) release(k string) {
	f.mu.Lock()
	delete(f.keys, k)
	f.mu.Unlock()
}

//
// Handlers
//

// GetChallenge godoc
// @ID          getChallenge
// @Summary     Issue a challenge
// @Description Returns a fresh arithmetic challenge for the named form. The answer stays on the server.
// @Tags        Submissions
// @Produce     json
// @Param       form  query  string  true  "Form the challenge is for"  Enums(subscribe, review, contact)
// @Success     200  {object}  services.ChallengeView
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown form"
// @Failure     503  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /challenge [get]
func (h *Handlers) GetChallenge(c *gin.Context) {
	form := strings.TrimSpace(c.Query("form"))
	view, err := h.subSvc.IssueChallenge(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, services.ErrUnknownForm) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "form must be one of: subscribe, review, contact")
			return
		}
		fail(c, http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "could not issue a challenge")
		return
	}
	c.Header("Cache-Control", "no-store")
	ok(c, http.StatusOK, view)
}

// Subscribe godoc
// @ID          subscribe
// @Summary     Join the mailing list
// @Description Gated by honeypot, field validation and the arithmetic challenge. A repeat e-mail is a soft success (200).
// @Tags        Submissions
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Key for safe retries"
// @Param       body  body  handlers.SubscribeRequest  true  "Subscriber"
// @Success     201  {object}  handlers.SubmissionResponse  "Accepted"
// @Success     200  {object}  handlers.SubmissionResponse  "Already subscribed"
// @Failure     400  {object}  handlers.SubmissionResponse  "Bot or challenge failure"
// @Failure     409  {object}  handlers.ErrorResponse       "Same key still in progress"
// @Failure     422  {object}  handlers.SubmissionResponse  "Validation failure"
// @Failure     503  {object}  handlers.SubmissionResponse  "Store unavailable"
// @Router      /subscribe [post]
func (h *Handlers) Subscribe(c *gin.Context) {
	if h.replay(c) {
		return
	}
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	h.submit(c, services.Submission{
		Form:        domain.FormSubscribe,
		ChallengeID: req.ChallengeID,
		Answer:      string(req.ChallengeAnswer),
		Honeypot:    req.Website,
		Fields: antispam.Values{
			antispam.FieldFirstName: req.FirstName,
			antispam.FieldLastName:  req.LastName,
			antispam.FieldEmail:     req.Email,
			antispam.FieldPhone:     req.Phone,
		},
	})
}

// SubmitReview godoc
// @ID          submitReview
// @Summary     Submit a review
// @Description Stores the review as pending; it appears on the site once approved.
// @Tags        Submissions
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Key for safe retries"
// @Param       body  body  handlers.ReviewRequest  true  "Review"
// @Success     201  {object}  handlers.SubmissionResponse  "Accepted"
// @Failure     400  {object}  handlers.SubmissionResponse  "Bot or challenge failure"
// @Failure     409  {object}  handlers.ErrorResponse       "Same key still in progress"
// @Failure     422  {object}  handlers.SubmissionResponse  "Validation failure"
// @Failure     503  {object}  handlers.SubmissionResponse  "Store unavailable"
// @Router      /reviews [post]
func (h *Handlers) SubmitReview(c *gin.Context) {
	if h.replay(c) {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	h.submit(c, services.Submission{
		Form:        domain.FormReview,
		ChallengeID: req.ChallengeID,
		Answer:      string(req.ChallengeAnswer),
		Honeypot:    req.Website,
		Fields: antispam.Values{
			antispam.FieldName:         req.Name,
			antispam.FieldEmail:        req.Email,
			antispam.FieldRelationship: req.Relationship,
			antispam.FieldWhereSeen:    req.WhereSeen,
			antispam.FieldHowFound:     req.HowFound,
			antispam.FieldReview:       req.Review,
			antispam.FieldPermission:   req.Permission,
		},
	})
}

// SubmitContact godoc
// @ID          submitContact
// @Summary     Send a contact message
// @Tags        Submissions
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Key for safe retries"
// @Param       body  body  handlers.ContactRequest  true  "Message"
// @Success     201  {object}  handlers.SubmissionResponse  "Accepted"
// @Failure     400  {object}  handlers.SubmissionResponse  "Bot or challenge failure"
// @Failure     409  {object}  handlers.ErrorResponse       "Same key still in progress"
// @Failure     422  {object}  handlers.SubmissionResponse  "Validation failure"
// @Failure     503  {object}  handlers.SubmissionResponse  "Store unavailable"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	if h.replay(c) {
		return
	}
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	h.submit(c, services.Submission{
		Form:        domain.FormContact,
		ChallengeID: req.ChallengeID,
		Answer:      string(req.ChallengeAnswer),
		Honeypot:    req.Website,
		Fields: antispam.Values{
			antispam.FieldName:    req.Name,
			antispam.FieldEmail:   req.Email,
			antispam.FieldMessage: req.Message,
		},
	})
}

// replay answers the request from a recorded outcome when the idempotency
// middleware flagged it. It reports whether it wrote a response.
func (h *Handlers) replay(c *gin.Context) bool {
	if h.idem == nil || !middleware.IsReplay(c) {
		return false
	}
	key, _ := middleware.GetIdempotencyKey(c)
	rec, err := h.idem.Get(c.Request.Context(), middleware.ClientID(c), middleware.IdempotencyScope(c), key)
	if err != nil {
		// Expired between the lookup and now: run the submission normally.
		return false
	}
	c.Header("Idempotency-Replayed", "true")
	ok(c, rec.Status, SubmissionResponse{
		Outcome:     rec.Outcome,
		Message:     rec.Message,
		ClearFields: true,
		ClearAnswer: true,
	})
	return true
}

func (h *Handlers) submit(c *gin.Context, sub services.Submission) {
	ctx := c.Request.Context()
	key, hasKey := middleware.GetIdempotencyKey(c)
	clientID, scope := middleware.ClientID(c), middleware.IdempotencyScope(c)

	if hasKey {
		slot := clientID + "|" + scope + "|" + key
		if !h.inflight.acquire(slot) {
			fail(c, http.StatusConflict, ErrCodeSubmitInProgress, "a submission with this Idempotency-Key is still in progress")
			return
		}
		defer h.inflight.release(slot)
	}

	res, err := h.subSvc.Submit(ctx, sub)
	if err != nil {
		switch {
		case errors.Is(err, antispam.ErrSubmitInProgress):
			fail(c, http.StatusConflict, ErrCodeSubmitInProgress, "submission already in progress")
		case errors.Is(err, services.ErrUnknownForm):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "unknown form")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	out := res.Outcome
	status, code := outcomeStatus(out.State)
	body := SubmissionResponse{
		Code:        code,
		Outcome:     out.State.String(),
		Message:     out.Message,
		Fields:      out.FieldErrors,
		ClearFields: out.ClearFields,
		ClearAnswer: out.ClearAnswer,
		Challenge:   res.Challenge,
	}
	if code != "" {
		body.RequestID = middleware.RequestIDFrom(c)
	}

	if hasKey && h.idem != nil && (out.State == antispam.Accepted || out.State == antispam.RejectedDuplicate) {
		err := h.idem.Record(ctx, repo.IdempotencyRecord{
			ClientID: clientID,
			Scope:    scope,
			Key:      key,
			Outcome:  body.Outcome,
			Message:  body.Message,
			Status:   status,
		})
		if err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency record failed")
		}
	}

	ok(c, status, body)
}
