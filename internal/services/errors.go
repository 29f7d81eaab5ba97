// Package services defines the business logic of the promo site: the gated
// public submissions and the admin operations on reviews, subscribers,
// contact messages and site content. This file centralizes service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

var (
	// ErrUnknownForm is returned when a challenge or submission names a form
	// other than subscribe, review or contact.
	ErrUnknownForm = errors.New("unknown form")

	// ErrReviewNotFound indicates that the requested review does not exist.
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidStatus is returned for a moderation status outside
	// pending/approved/rejected.
	ErrInvalidStatus = errors.New("invalid review status")

	// ErrStatusTransition is returned when a review cannot move from its
	// current status to the requested one (e.g. back to pending).
	ErrStatusTransition = errors.New("status transition not allowed")

	// ErrSubscriberNotFound indicates that the requested subscriber does not exist.
	ErrSubscriberNotFound = errors.New("subscriber not found")

	// ErrContactNotFound indicates that the requested contact message does not exist.
	ErrContactNotFound = errors.New("contact message not found")

	// ErrContentNotFound indicates that the requested content item does not exist.
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidContent wraps a description of the offending content field.
	ErrInvalidContent = errors.New("invalid content")

	// ErrInvalidCredentials is returned by Login for a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned for a missing, revoked or expired admin token.
	ErrUnauthorized = errors.New("unauthorized")
)
