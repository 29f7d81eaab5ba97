// Package services – SubmissionService
//
// This file wires the public forms (subscribe, submit review, contact) to the
// antispam gate. The arithmetic challenge is held server-side: the client gets
// a challenge ID and the question text, and names the ID when it submits.
//
// Per submission the service
//   - loads the open challenge for the form (unknown, used or expired IDs
//     behave like a wrong answer),
//   - rebuilds a gate around it and runs the attempt,
//   - claims the challenge atomically once the answer is right, before the
//     record is written, so one challenge admits at most one record,
//   - burns the challenge on a bot hit or a wrong answer, and issues the next
//     one whenever the gate regenerates.
//
// Validation failures leave the challenge open so the visitor can fix a typo
// and resubmit against the same problem.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/antispam"
	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
)

// SubmissionRepo defines the repository contract required by SubmissionService.
type SubmissionRepo interface {
	CreateChallenge(ctx context.Context, db *gorm.DB, ch *domain.Challenge) error
	GetOpenChallenge(ctx context.Context, db *gorm.DB, id, form string, now time.Time) (*domain.Challenge, error)
	ClaimChallenge(ctx context.Context, db *gorm.DB, id string, now time.Time) error

	// CreateSubscriber must return repo.ErrDuplicate for an existing email.
	CreateSubscriber(ctx context.Context, db *gorm.DB, s *domain.Subscriber) error
	CreateReview(ctx context.Context, db *gorm.DB, r *domain.Review) error
	CreateContact(ctx context.Context, db *gorm.DB, m *domain.Contact) error
}

// SubmissionService runs public form submissions through the antispam gate.
type SubmissionService struct {
	DB   *gorm.DB
	Repo SubmissionRepo

	// Generator draws challenge problems.
	Generator *antispam.Generator
	// ChallengeTTL is how long an issued challenge stays answerable.
	ChallengeTTL time.Duration
	// StoreTimeout bounds the claim+insert round-trip of one submission.
	StoreTimeout time.Duration
	// Now is the clock; tests override it.
	Now func() time.Time
}

// NewSubmissionService constructs a SubmissionService with default timings
// (15 minute challenges, 10 second store timeout).
func NewSubmissionService(db *gorm.DB, r SubmissionRepo) *SubmissionService {
	return &SubmissionService{
		DB:           db,
		Repo:         r,
		Generator:    antispam.NewGenerator(nil),
		ChallengeTTL: 15 * time.Minute,
		StoreTimeout: antispam.DefaultTimeout,
		Now:          time.Now,
	}
}

// ChallengeView is the public face of an issued challenge. The operands stay
// on the server.
type ChallengeView struct {
	ID        string    `json:"challenge_id" example:"0b6e9d0c-8d52-4c55-9b43-7f9f2c1b0e11"`
	Question  string    `json:"question"     example:"What is 3 + 4?"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Submission is one public form post.
type Submission struct {
	Form        string
	ChallengeID string
	Answer      string
	Honeypot    string
	Fields      antispam.Values
}

// SubmissionResult is the gate outcome plus the challenge to show next.
// Challenge is nil only when a new challenge could not be stored; the client
// should then fetch one explicitly.
type SubmissionResult struct {
	Form      string
	Outcome   antispam.Outcome
	Challenge *ChallengeView
}

var formMessages = map[string]antispam.Messages{
	domain.FormSubscribe: {
		Accepted:   "You're in! You'll be the first to know about shows in your area.",
		Duplicate:  "You're already subscribed. We'll keep you posted!",
		Bot:        "Your submission could not be processed.",
		Challenge:  "Verification failed. Please solve the new problem and try again.",
		Validation: "Please correct the highlighted fields.",
		StoreError: "We couldn't sign you up right now. Please try again later.",
	},
	domain.FormReview: {
		Accepted:   "Thank you for your review! It will be displayed after approval.",
		Duplicate:  "Thank you! We already have your review.",
		Bot:        "Your submission could not be processed.",
		Challenge:  "Verification failed. Please solve the new problem and try again.",
		Validation: "Please correct the highlighted fields.",
		StoreError: "Failed to submit review. Please try again.",
	},
	domain.FormContact: {
		Accepted:   "Thanks for reaching out! We'll get back to you soon.",
		Duplicate:  "Thanks! We already have your message.",
		Bot:        "Your submission could not be processed.",
		Challenge:  "Verification failed. Please solve the new problem and try again.",
		Validation: "Please correct the highlighted fields.",
		StoreError: "Your message could not be sent. Please try again later.",
	},
}

func formSchema(form string) antispam.Schema {
	switch form {
	case domain.FormSubscribe:
		return antispam.SubscribeSchema()
	case domain.FormReview:
		return antispam.ReviewSchema()
	default:
		return antispam.ContactSchema()
	}
}

func (s *SubmissionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *SubmissionService) generator() *antispam.Generator {
	if s.Generator == nil {
		s.Generator = antispam.NewGenerator(nil)
	}
	return s.Generator
}

func (s *SubmissionService) ttl() time.Duration {
	if s.ChallengeTTL <= 0 {
		return 15 * time.Minute
	}
	return s.ChallengeTTL
}

// IssueChallenge stores a fresh challenge for form and returns its public view.
func (s *SubmissionService) IssueChallenge(ctx context.Context, form string) (*ChallengeView, error) {
	tr := otel.Tracer("services/SubmissionService")
	ctx, span := tr.Start(ctx, "IssueChallenge", trace.WithAttributes(attribute.String("form", form)))
	defer span.End()

	if !domain.ValidForm(form) {
		return nil, ErrUnknownForm
	}
	return s.issue(ctx, form, s.generator().Generate())
}

func (s *SubmissionService) issue(ctx context.Context, form string, p antispam.Problem) (*ChallengeView, error) {
	now := s.now()
	ch := &domain.Challenge{
		ID:        uuid.NewString(),
		Form:      form,
		OperandA:  p.A,
		OperandB:  p.B,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}
	if err := s.Repo.CreateChallenge(ctx, s.DB, ch); err != nil {
		return nil, err
	}
	return challengeView(ch), nil
}

func challengeView(ch *domain.Challenge) *ChallengeView {
	p := antispam.Problem{A: ch.OperandA, B: ch.OperandB}
	return &ChallengeView{ID: ch.ID, Question: p.Question(), ExpiresAt: ch.ExpiresAt}
}

// Submit runs sub through the gate for its form. Rejections are reported in
// the result; the only error is ErrUnknownForm.
func (s *SubmissionService) Submit(ctx context.Context, sub Submission) (*SubmissionResult, error) {
	tr := otel.Tracer("services/SubmissionService")
	ctx, span := tr.Start(ctx, "Submit", trace.WithAttributes(attribute.String("form", sub.Form)))
	defer span.End()

	if !domain.ValidForm(sub.Form) {
		return nil, ErrUnknownForm
	}
	lg := zerolog.Ctx(ctx)
	msgs := formMessages[sub.Form]

	// Load the challenge the visitor answered. A missing one leaves the zero
	// Problem, which fails every answer.
	var (
		loaded  *domain.Challenge
		loadErr error
		problem antispam.Problem
	)
	if sub.ChallengeID != "" {
		ch, err := s.Repo.GetOpenChallenge(ctx, s.DB, sub.ChallengeID, sub.Form, s.now())
		switch {
		case err == nil:
			loaded = ch
			problem = antispam.Problem{A: ch.OperandA, B: ch.OperandB}
		case !errors.Is(err, repo.ErrNotFound):
			loadErr = err
		}
	}

	form := antispam.ResumeForm(antispam.Config{
		Schema:    formSchema(sub.Form),
		Generator: s.generator(),
		Messages:  msgs,
		Timeout:   s.StoreTimeout,
	}, problem)

	attempt := antispam.Attempt{
		Honeypot: sub.Honeypot,
		Answer:   sub.Answer,
		Fields:   sub.Fields,
		Claim: func(ctx context.Context) error {
			err := s.Repo.ClaimChallenge(ctx, s.DB, sub.ChallengeID, s.now())
			if errors.Is(err, repo.ErrNotFound) {
				return fmt.Errorf("challenge %s: %w", sub.ChallengeID, antispam.ErrChallengeFailed)
			}
			return err
		},
	}

	out, err := form.Submit(ctx, attempt, s.persist(sub.Form, sub.Fields))
	if err != nil {
		// A freshly built form is never busy.
		return nil, err
	}

	// The challenge could not even be read: that is the store failing, not
	// the visitor answering wrong.
	if loadErr != nil && out.State == antispam.RejectedChallenge {
		out.State = antispam.RejectedStoreError
		out.Err = fmt.Errorf("%w: %w", antispam.ErrStoreUnavailable, loadErr)
		out.Message = msgs.StoreError
	}

	switch out.State {
	case antispam.RejectedBot, antispam.RejectedChallenge:
		if loaded != nil {
			// Burn the answered challenge so it cannot be brute-forced.
			if err := s.Repo.ClaimChallenge(ctx, s.DB, loaded.ID, s.now()); err != nil && !errors.Is(err, repo.ErrNotFound) {
				lg.Warn().Err(err).Str("form", sub.Form).Str("challenge_id", loaded.ID).Msg("could not burn answered challenge")
			}
		}
	}

	res := &SubmissionResult{Form: sub.Form, Outcome: out}
	switch {
	case out.Regenerated:
		res.Challenge = s.issueOrLog(ctx, lg, sub.Form, out.Challenge)
	case loaded != nil:
		res.Challenge = challengeView(loaded)
	default:
		// Validation failed against a missing or expired challenge; hand out a
		// usable one for the corrected resubmission.
		res.Challenge = s.issueOrLog(ctx, lg, sub.Form, s.generator().Generate())
	}

	submissionOutcomes.WithLabelValues(sub.Form, out.State.String()).Inc()
	span.SetAttributes(attribute.String("outcome", out.State.String()))

	switch out.State {
	case antispam.Accepted, antispam.RejectedDuplicate:
		lg.Info().Str("form", sub.Form).Str("outcome", out.State.String()).Msg("submission")
	case antispam.RejectedStoreError:
		lg.Error().Err(out.Err).Str("form", sub.Form).Str("outcome", out.State.String()).Msg("submission")
	default:
		lg.Warn().Str("form", sub.Form).Str("outcome", out.State.String()).Msg("submission")
	}
	return res, nil
}

func (s *SubmissionService) issueOrLog(ctx context.Context, lg *zerolog.Logger, form string, p antispam.Problem) *ChallengeView {
	view, err := s.issue(ctx, form, p)
	if err != nil {
		lg.Warn().Err(err).Str("form", form).Msg("could not issue follow-up challenge")
		return nil
	}
	return view
}

// persist builds the insert for form from already-validated fields.
func (s *SubmissionService) persist(form string, v antispam.Values) antispam.Persist {
	switch form {
	case domain.FormSubscribe:
		return func(ctx context.Context) error {
			err := s.Repo.CreateSubscriber(ctx, s.DB, &domain.Subscriber{
				FirstName: v.String(antispam.FieldFirstName),
				LastName:  v.String(antispam.FieldLastName),
				Email:     NormalizeEmail(v.String(antispam.FieldEmail)),
				Phone:     v.String(antispam.FieldPhone),
			})
			if errors.Is(err, repo.ErrDuplicate) {
				return fmt.Errorf("subscriber: %w", antispam.ErrConflict)
			}
			return err
		}
	case domain.FormReview:
		return func(ctx context.Context) error {
			var email *string
			if e := v.String(antispam.FieldEmail); e != "" {
				e = NormalizeEmail(e)
				email = &e
			}
			return s.Repo.CreateReview(ctx, s.DB, &domain.Review{
				Name:         v.String(antispam.FieldName),
				Email:        email,
				Relationship: domain.Relationship(v.String(antispam.FieldRelationship)),
				ReviewText:   v.String(antispam.FieldReview),
				Status:       domain.ReviewPending,
				WhereSeen:    optional(v.String(antispam.FieldWhereSeen)),
				HowFound:     optional(v.String(antispam.FieldHowFound)),
			})
		}
	default:
		return func(ctx context.Context) error {
			return s.Repo.CreateContact(ctx, s.DB, &domain.Contact{
				Name:    v.String(antispam.FieldName),
				Email:   NormalizeEmail(v.String(antispam.FieldEmail)),
				Message: v.String(antispam.FieldMessage),
			})
		}
	}
}

// NormalizeEmail lower-cases an address so uniqueness is case-insensitive.
func NormalizeEmail(e string) string {
	return cases.Lower(language.Und).String(e)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
