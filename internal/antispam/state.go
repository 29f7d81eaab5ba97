package antispam

import (
	"errors"
	"fmt"
)

// State is the lifecycle position of a form.
type State int

const (
	Idle State = iota
	Submitting
	Accepted
	RejectedBot
	RejectedChallenge
	RejectedValidation
	RejectedDuplicate
	RejectedStoreError
)

var stateNames = [...]string{
	Idle:               "idle",
	Submitting:         "submitting",
	Accepted:           "accepted",
	RejectedBot:        "rejected_bot",
	RejectedChallenge:  "rejected_challenge",
	RejectedValidation: "rejected_validation",
	RejectedDuplicate:  "rejected_duplicate",
	RejectedStoreError: "rejected_store_error",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether s ends an attempt. Every terminal state leaves the
// form ready for another submission.
func (s State) Terminal() bool { return s >= Accepted && s <= RejectedStoreError }

// Event drives the state machine.
type Event int

const (
	EventSubmit Event = iota
	EventBotDetected
	EventInvalid
	EventChallengeFailed
	EventPersisted
	EventConflict
	EventStoreFailed
	EventReset
)

var eventNames = [...]string{
	EventSubmit:          "submit",
	EventBotDetected:     "bot_detected",
	EventInvalid:         "invalid",
	EventChallengeFailed: "challenge_failed",
	EventPersisted:       "persisted",
	EventConflict:        "conflict",
	EventStoreFailed:     "store_failed",
	EventReset:           "reset",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(e))
	}
	return eventNames[e]
}

// ErrInvalidTransition is returned by Transition for an event that is not
// allowed in the current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// outcomes maps the events allowed while Submitting to the state they end in.
var outcomes = map[Event]State{
	EventBotDetected:     RejectedBot,
	EventInvalid:         RejectedValidation,
	EventChallengeFailed: RejectedChallenge,
	EventPersisted:       Accepted,
	EventConflict:        RejectedDuplicate,
	EventStoreFailed:     RejectedStoreError,
}

// Transition is the pure transition function of the form state machine.
//
//	Idle | terminal  --submit-->  Submitting
//	Submitting       --outcome--> terminal
//	terminal         --reset-->   Idle
//
// Submit is refused while Submitting, so a second click cannot start a
// parallel attempt.
func Transition(s State, e Event) (State, error) {
	switch {
	case s == Submitting:
		if next, ok := outcomes[e]; ok {
			return next, nil
		}
	case s == Idle || s.Terminal():
		switch e {
		case EventSubmit:
			return Submitting, nil
		case EventReset:
			return Idle, nil
		}
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}
