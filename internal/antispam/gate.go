package antispam

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultTimeout bounds a single Claim+Persist round-trip when Config.Timeout
// is zero.
const DefaultTimeout = 10 * time.Second

// Persist stores an accepted submission. Returning an error that wraps
// ErrConflict signals a uniqueness violation; any other error is treated as
// the store being unavailable.
type Persist func(ctx context.Context) error

// Claim marks the attempt's challenge as spent. It runs after the answer has
// been checked and before Persist. An error wrapping ErrChallengeFailed means
// the challenge was already spent (or has expired); any other error is a
// store failure.
type Claim func(ctx context.Context) error

// Attempt is one press of the submit button.
type Attempt struct {
	Honeypot string
	Answer   string
	Fields   Values
	Claim    Claim // optional
}

// Messages are the user-facing texts attached to each outcome.
type Messages struct {
	Accepted   string
	Duplicate  string
	Bot        string
	Challenge  string
	Validation string
	StoreError string
}

// DefaultMessages returns the generic outcome texts.
func DefaultMessages() Messages {
	return Messages{
		Accepted:   "Thanks! Your submission has been received.",
		Duplicate:  "We already have this on file. Thanks!",
		Bot:        "Your submission could not be processed.",
		Challenge:  "Verification failed. Please solve the new problem and try again.",
		Validation: "Please correct the highlighted fields.",
		StoreError: "Something went wrong. Please try again later.",
	}
}

func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	if m.Accepted == "" {
		m.Accepted = d.Accepted
	}
	if m.Duplicate == "" {
		m.Duplicate = d.Duplicate
	}
	if m.Bot == "" {
		m.Bot = d.Bot
	}
	if m.Challenge == "" {
		m.Challenge = d.Challenge
	}
	if m.Validation == "" {
		m.Validation = d.Validation
	}
	if m.StoreError == "" {
		m.StoreError = d.StoreError
	}
	return m
}

// Config describes one kind of form.
type Config struct {
	Schema    Schema
	Generator *Generator // nil uses an unseeded generator
	Messages  Messages
	Timeout   time.Duration
}

// Outcome reports how an attempt ended and what the form should show next.
type Outcome struct {
	State       State
	Err         error // nil only for Accepted
	FieldErrors FieldErrors
	Message     string

	// ClearFields tells the UI to reset every input; ClearAnswer only the
	// challenge answer.
	ClearFields bool
	ClearAnswer bool

	// Challenge is the problem to display for the next attempt. Regenerated
	// reports whether it differs from the one this attempt answered.
	Challenge   Problem
	Regenerated bool
}

// Form is the submission gate for a single form instance. It owns the
// current challenge and the state machine; at most one Submit runs at a time.
type Form struct {
	cfg Config

	mu        sync.Mutex
	state     State
	challenge Problem
}

// NewForm returns an Idle form with a freshly generated challenge.
func NewForm(cfg Config) *Form {
	f := ResumeForm(cfg, Problem{})
	f.challenge = f.cfg.Generator.Generate()
	return f
}

// ResumeForm returns an Idle form whose current challenge is p. Servers use it
// to rebuild a form around a challenge they issued earlier; a zero p makes
// every answer wrong.
func ResumeForm(cfg Config, p Problem) *Form {
	if cfg.Generator == nil {
		cfg.Generator = NewGenerator(nil)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.Messages = cfg.Messages.withDefaults()
	return &Form{cfg: cfg, state: Idle, challenge: p}
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Challenge returns the challenge currently on display.
func (f *Form) Challenge() Problem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.challenge
}

// Submit runs a through the gate. The checks run in a fixed order and stop at
// the first failure: bot trap, field validation, challenge answer, then
// persistence. persist is invoked at most once and only when every check
// passed.
//
// Submit returns ErrSubmitInProgress, without touching the form, when another
// attempt is still running. Rejections are reported in the Outcome, not as an
// error.
func (f *Form) Submit(ctx context.Context, a Attempt, persist Persist) (Outcome, error) {
	f.mu.Lock()
	next, err := Transition(f.state, EventSubmit)
	if err != nil {
		f.mu.Unlock()
		return Outcome{State: Submitting}, ErrSubmitInProgress
	}
	f.state = next
	current := f.challenge
	f.mu.Unlock()

	ev, out := f.run(ctx, current, a, persist)

	f.mu.Lock()
	defer f.mu.Unlock()
	// Every outcome event is valid from Submitting.
	f.state, _ = Transition(f.state, ev)
	f.challenge = out.Challenge
	out.State = f.state
	return out, nil
}

// Reset returns a finished form to Idle with a fresh challenge.
func (f *Form) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next, err := Transition(f.state, EventReset)
	if err != nil {
		return err
	}
	f.state = next
	f.challenge = f.cfg.Generator.Next(f.challenge)
	return nil
}

func (f *Form) run(ctx context.Context, current Problem, a Attempt, persist Persist) (Event, Outcome) {
	msgs := f.cfg.Messages
	fresh := func() Problem { return f.cfg.Generator.Next(current) }

	if Tripped(a.Honeypot) {
		return EventBotDetected, Outcome{
			Err:         ErrBotDetected,
			Message:     msgs.Bot,
			ClearAnswer: true,
			Challenge:   fresh(),
			Regenerated: true,
		}
	}

	if res := f.cfg.Schema.Validate(a.Fields); !res.Valid() {
		return EventInvalid, Outcome{
			Err:         &ValidationError{Fields: res.Errors},
			FieldErrors: res.Errors,
			Message:     msgs.Validation,
			Challenge:   current,
		}
	}

	challengeFailed := func() (Event, Outcome) {
		return EventChallengeFailed, Outcome{
			Err:         ErrChallengeFailed,
			Message:     msgs.Challenge,
			ClearAnswer: true,
			Challenge:   fresh(),
			Regenerated: true,
		}
	}
	storeFailed := func(cause error) (Event, Outcome) {
		return EventStoreFailed, Outcome{
			Err:         fmt.Errorf("%w: %w", ErrStoreUnavailable, cause),
			Message:     msgs.StoreError,
			ClearAnswer: true,
			Challenge:   fresh(),
			Regenerated: true,
		}
	}

	if !current.Check(a.Answer) {
		return challengeFailed()
	}

	tctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	if a.Claim != nil {
		if err := bounded(tctx, a.Claim); err != nil {
			if errors.Is(err, ErrChallengeFailed) {
				return challengeFailed()
			}
			return storeFailed(err)
		}
	}

	if persist == nil {
		return storeFailed(errors.New("no persistence configured"))
	}
	err := bounded(tctx, persist)
	switch {
	case err == nil:
		return EventPersisted, Outcome{
			Message:     msgs.Accepted,
			ClearFields: true,
			ClearAnswer: true,
			Challenge:   fresh(),
			Regenerated: true,
		}
	case errors.Is(err, ErrConflict):
		return EventConflict, Outcome{
			Err:         ErrDuplicateRecord,
			Message:     msgs.Duplicate,
			ClearFields: true,
			ClearAnswer: true,
			Challenge:   fresh(),
			Regenerated: true,
		}
	default:
		return storeFailed(err)
	}
}

// bounded runs fn and gives up once ctx is done, even if fn ignores ctx.
func bounded(ctx context.Context, fn func(context.Context) error) error {
	done := make(chan error, 1)
	go func() { done <- fn(ctx) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
