// Package handlers implements the HTTP endpoints of the promo site: public
// content lists, the gated submission forms and the admin surface.
//
// Every failure is written as an ErrorResponse with a stable code, so the
// site's frontend can branch on the code and show the message as is:
//
//	HTTP/1.1 422 Unprocessable Entity
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "validation_failed",
//	  "message": "please fix the highlighted fields",
//	  "fields": { "email": "enter a valid email address" }
//	}
//
// Submission outcomes are not errors in this sense; they use
// SubmissionResponse (see submission_handler.go).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupsite/promo-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope shared by all endpoints.
type ErrorResponse struct {
	// Correlation ID, also sent as X-Request-ID
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go)
	Code string `json:"code" example:"not_found"`
	// Message safe to show to visitors
	Message string `json:"message" example:"resource not found"`
	// Per-field messages, present only for validation failures
	Fields map[string]string `json:"fields,omitempty"`
}

// fail aborts with an ErrorResponse. 5xx responses are logged with the
// request-scoped logger; 4xx ones only show up in the access log.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}
	abort(c, status, ErrorResponse{Code: code, Message: msg})
}

// failFields is fail with per-field messages attached.
func failFields(c *gin.Context, status int, code, msg string, fields map[string]string) {
	abort(c, status, ErrorResponse{Code: code, Message: msg, Fields: fields})
}

func abort(c *gin.Context, status int, resp ErrorResponse) {
	resp.RequestID = middleware.RequestIDFrom(c)
	c.AbortWithStatusJSON(status, resp)
}

// Fail lets the router answer NoRoute/NoMethod with the same envelope.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
