// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP responses
// (via the `fail()` helper in this package). These codes provide clients with a stable,
// machine-readable error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., bad_request, unauthorized, conflict) mirror common HTTP
//     status semantics to aid interoperability.
//   - Gate codes (bot_detected, challenge_failed, validation_failed,
//     store_unavailable) name the reason a public submission was turned away,
//     so the front-end can decide whether to clear the form or just the answer.
//   - All error responses must include both an HTTP status and one of these codes.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "challenge_failed",
//	  "message": "Verification failed. Please solve the new problem and try again."
//	}
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeInternal     = "internal_error"

	// Submission gate:
	ErrCodeBotDetected      = "bot_detected"
	ErrCodeChallengeFailed  = "challenge_failed"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeStoreUnavailable = "store_unavailable"
	ErrCodeSubmitInProgress = "submit_in_progress"

	// Admin:
	ErrCodeInvalidStatus    = "invalid_status"
	ErrCodeInvalidContent   = "invalid_content"
	ErrCodeListFailed       = "list_failed"
	ErrCodeExportFailed     = "export_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
