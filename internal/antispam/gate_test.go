package antispam

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"
)

type subscriberRow struct {
	First, Last, Email, Phone string
}

// fakeSubscribers is an in-memory store with a unique email constraint.
type fakeSubscribers struct {
	calls atomic.Int32
	rows  map[string]subscriberRow
	fail  error
}

func (s *fakeSubscribers) insert(v Values) Persist {
	return func(ctx context.Context) error {
		s.calls.Add(1)
		if s.fail != nil {
			return s.fail
		}
		if s.rows == nil {
			s.rows = map[string]subscriberRow{}
		}
		email := v.String(FieldEmail)
		if _, dup := s.rows[email]; dup {
			return fmt.Errorf("insert: %w", ErrConflict)
		}
		s.rows[email] = subscriberRow{v.String(FieldFirstName), v.String(FieldLastName), email, v.String(FieldPhone)}
		return nil
	}
}

func subscribeForm(p Problem) *Form {
	return ResumeForm(Config{
		Schema:    SubscribeSchema(),
		Generator: NewGenerator(rand.NewPCG(42, 42)),
	}, p)
}

func TestSubmit_AcceptsAnaLee(t *testing.T) {
	store := &fakeSubscribers{}
	f := subscribeForm(Problem{A: 3, B: 4})
	fields := Values{
		FieldFirstName: "Ana",
		FieldLastName:  "Lee",
		FieldEmail:     "ana@example.com",
		FieldPhone:     "5551234567",
	}

	out, err := f.Submit(context.Background(), Attempt{Answer: "7", Fields: fields}, store.insert(fields))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.State != Accepted || out.Err != nil {
		t.Fatalf("want accepted, got %s (%v)", out.State, out.Err)
	}
	if !out.ClearFields || !out.Regenerated {
		t.Fatalf("accepted outcome should clear fields and regenerate: %+v", out)
	}
	if store.calls.Load() != 1 {
		t.Fatalf("insert calls = %d, want 1", store.calls.Load())
	}
	want := subscriberRow{"Ana", "Lee", "ana@example.com", "5551234567"}
	if got := store.rows["ana@example.com"]; got != want {
		t.Fatalf("stored %+v, want %+v", got, want)
	}
	if f.State() != Accepted {
		t.Fatalf("form state %s", f.State())
	}
}

func TestSubmit_WrongAnswerRegenerates(t *testing.T) {
	store := &fakeSubscribers{}
	fields := validSubscriber()
	var f *Form

	for _, answer := range []string{"8", "", "seven"} {
		f = subscribeForm(Problem{A: 3, B: 4})
		out, _ := f.Submit(context.Background(), Attempt{Answer: answer, Fields: fields}, store.insert(fields))
		if out.State != RejectedChallenge || !errors.Is(out.Err, ErrChallengeFailed) {
			t.Fatalf("answer %q: got %s", answer, out.State)
		}
		if !out.ClearAnswer || out.ClearFields {
			t.Fatalf("answer %q: challenge failure clears only the answer: %+v", answer, out)
		}
		if out.Challenge.Expected() == 7 || f.Challenge() != out.Challenge {
			t.Fatalf("answer %q: challenge not replaced: %+v", answer, out.Challenge)
		}
	}
	if store.calls.Load() != 0 {
		t.Fatalf("store touched on failed challenge: %d", store.calls.Load())
	}

	// The old answer cannot be replayed against the new problem.
	out, _ := f.Submit(context.Background(), Attempt{Answer: "7", Fields: fields}, store.insert(fields))
	if out.State != RejectedChallenge {
		t.Fatalf("replayed answer accepted: %s", out.State)
	}
}

func TestSubmit_HoneypotBeatsEverything(t *testing.T) {
	store := &fakeSubscribers{}
	f := subscribeForm(Problem{A: 3, B: 4})
	fields := validSubscriber()

	out, _ := f.Submit(context.Background(), Attempt{Honeypot: "x", Answer: "7", Fields: fields}, store.insert(fields))
	if out.State != RejectedBot || !errors.Is(out.Err, ErrBotDetected) {
		t.Fatalf("want rejected_bot, got %s", out.State)
	}
	if out.Message != DefaultMessages().Bot {
		t.Fatalf("bot message should stay generic: %q", out.Message)
	}
	if store.calls.Load() != 0 {
		t.Fatal("store must not be called for bots")
	}
}

func TestSubmit_ValidationKeepsChallenge(t *testing.T) {
	store := &fakeSubscribers{}
	f := subscribeForm(Problem{A: 3, B: 4})
	fields := validSubscriber()
	fields[FieldPhone] = "555"

	out, _ := f.Submit(context.Background(), Attempt{Answer: "8", Fields: fields}, store.insert(fields))
	if out.State != RejectedValidation {
		t.Fatalf("want rejected_validation, got %s", out.State)
	}
	var ve *ValidationError
	if !errors.As(out.Err, &ve) || ve.Fields[FieldPhone] == "" {
		t.Fatalf("want ValidationError for phone, got %v", out.Err)
	}
	if out.Regenerated || out.Challenge != (Problem{A: 3, B: 4}) {
		t.Fatalf("validation failure must keep the challenge: %+v", out.Challenge)
	}

	// Corrected resubmission with the same problem goes through.
	fields[FieldPhone] = "5551234567"
	out, _ = f.Submit(context.Background(), Attempt{Answer: "7", Fields: fields}, store.insert(fields))
	if out.State != Accepted {
		t.Fatalf("corrected resubmission: %s", out.State)
	}
}

func TestSubmit_PermissionFalseNeverReachesStore(t *testing.T) {
	calls := 0
	f := ResumeForm(Config{Schema: ReviewSchema()}, Problem{A: 2, B: 2})
	fields := validReview()
	fields[FieldPermission] = false

	out, _ := f.Submit(context.Background(), Attempt{Answer: "4", Fields: fields}, func(context.Context) error {
		calls++
		return nil
	})
	if out.State != RejectedValidation || out.FieldErrors[FieldPermission] == "" {
		t.Fatalf("want permission error, got %s %v", out.State, out.FieldErrors)
	}
	if calls != 0 {
		t.Fatalf("store calls = %d", calls)
	}
}

func TestSubmit_DuplicateIsSoftSuccess(t *testing.T) {
	store := &fakeSubscribers{}
	fields := validSubscriber()

	f := subscribeForm(Problem{A: 1, B: 1})
	if out, _ := f.Submit(context.Background(), Attempt{Answer: "2", Fields: fields}, store.insert(fields)); out.State != Accepted {
		t.Fatalf("first submit: %s", out.State)
	}

	f = subscribeForm(Problem{A: 5, B: 5})
	out, _ := f.Submit(context.Background(), Attempt{Answer: "10", Fields: fields}, store.insert(fields))
	if out.State != RejectedDuplicate || !errors.Is(out.Err, ErrDuplicateRecord) {
		t.Fatalf("want rejected_duplicate, got %s (%v)", out.State, out.Err)
	}
	if !out.ClearFields || !out.Regenerated {
		t.Fatalf("duplicate clears like success: %+v", out)
	}
	if store.calls.Load() != 2 {
		t.Fatalf("insert must not be retried: calls=%d", store.calls.Load())
	}
	if len(store.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(store.rows))
	}
}

func TestSubmit_StoreErrorKeepsFields(t *testing.T) {
	store := &fakeSubscribers{fail: errors.New("connection refused")}
	fields := validSubscriber()
	f := subscribeForm(Problem{A: 3, B: 4})

	out, _ := f.Submit(context.Background(), Attempt{Answer: "7", Fields: fields}, store.insert(fields))
	if out.State != RejectedStoreError || !errors.Is(out.Err, ErrStoreUnavailable) {
		t.Fatalf("want store error, got %s (%v)", out.State, out.Err)
	}
	if out.ClearFields || !out.Regenerated {
		t.Fatalf("store error keeps fields and regenerates: %+v", out)
	}
	if store.calls.Load() != 1 {
		t.Fatalf("no automatic retry: calls=%d", store.calls.Load())
	}
}

func TestSubmit_TimeoutMapsToStoreUnavailable(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	f := ResumeForm(Config{Schema: SubscribeSchema(), Timeout: 20 * time.Millisecond}, Problem{A: 3, B: 4})
	start := time.Now()
	out, _ := f.Submit(context.Background(), Attempt{Answer: "7", Fields: validSubscriber()}, func(context.Context) error {
		<-release // ignores ctx on purpose
		return nil
	})
	if out.State != RejectedStoreError || !errors.Is(out.Err, context.DeadlineExceeded) {
		t.Fatalf("want timeout store error, got %s (%v)", out.State, out.Err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("timeout not enforced")
	}
}

func TestSubmit_ClaimLost(t *testing.T) {
	store := &fakeSubscribers{}
	fields := validSubscriber()
	f := subscribeForm(Problem{A: 3, B: 4})

	claim := func(context.Context) error { return fmt.Errorf("claim: %w", ErrChallengeFailed) }
	out, _ := f.Submit(context.Background(), Attempt{Answer: "7", Fields: fields, Claim: claim}, store.insert(fields))
	if out.State != RejectedChallenge {
		t.Fatalf("lost claim should be a challenge failure, got %s", out.State)
	}
	if store.calls.Load() != 0 {
		t.Fatal("store called after lost claim")
	}

	f = subscribeForm(Problem{A: 3, B: 4})
	broken := func(context.Context) error { return errors.New("db down") }
	out, _ = f.Submit(context.Background(), Attempt{Answer: "7", Fields: fields, Claim: broken}, store.insert(fields))
	if out.State != RejectedStoreError {
		t.Fatalf("claim error should be a store error, got %s", out.State)
	}
}

func TestSubmit_RefusesWhileSubmitting(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	f := subscribeForm(Problem{A: 3, B: 4})
	fields := validSubscriber()

	done := make(chan Outcome, 1)
	go func() {
		out, _ := f.Submit(context.Background(), Attempt{Answer: "7", Fields: fields}, func(context.Context) error {
			close(entered)
			<-release
			return nil
		})
		done <- out
	}()

	<-entered
	if f.State() != Submitting {
		t.Fatalf("state = %s, want submitting", f.State())
	}
	if _, err := f.Submit(context.Background(), Attempt{Answer: "7", Fields: fields}, nil); !errors.Is(err, ErrSubmitInProgress) {
		t.Fatalf("second submit: %v", err)
	}
	close(release)

	if out := <-done; out.State != Accepted {
		t.Fatalf("first submit: %s", out.State)
	}
	if err := f.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if f.State() != Idle {
		t.Fatalf("after reset: %s", f.State())
	}
}

func TestNewForm_IssuesChallenge(t *testing.T) {
	f := NewForm(Config{Schema: SubscribeSchema()})
	if f.Challenge().IsZero() || f.State() != Idle {
		t.Fatalf("new form: %+v %s", f.Challenge(), f.State())
	}
}

func TestResumeForm_ZeroChallengeRejectsEveryAnswer(t *testing.T) {
	f := ResumeForm(Config{Schema: SubscribeSchema()}, Problem{})
	out, _ := f.Submit(context.Background(), Attempt{Answer: "0", Fields: validSubscriber()}, func(context.Context) error { return nil })
	if out.State != RejectedChallenge {
		t.Fatalf("got %s", out.State)
	}
}
