package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/standupsite/promo-backend/internal/antispam"
	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/http/middleware"
	"github.com/standupsite/promo-backend/internal/repo"
	"github.com/standupsite/promo-backend/internal/services"
)

// ---- stubs ----

type stubSubmissions struct {
	issue  func(ctx context.Context, form string) (*services.ChallengeView, error)
	submit func(ctx context.Context, sub services.Submission) (*services.SubmissionResult, error)
}

func (s stubSubmissions) IssueChallenge(ctx context.Context, form string) (*services.ChallengeView, error) {
	return s.issue(ctx, form)
}

func (s stubSubmissions) Submit(ctx context.Context, sub services.Submission) (*services.SubmissionResult, error) {
	return s.submit(ctx, sub)
}

// memIdem is an in-memory IdempotencyStore.
type memIdem struct {
	recs map[string]repo.IdempotencyRecord
}

func newMemIdem() *memIdem { return &memIdem{recs: map[string]repo.IdempotencyRecord{}} }

func (m *memIdem) Get(_ context.Context, clientID, scope, key string) (*domain.Idempotency, error) {
	r, ok := m.recs[clientID+"|"+scope+"|"+key]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &domain.Idempotency{ClientID: r.ClientID, Scope: r.Scope, Key: r.Key, Outcome: r.Outcome, Message: r.Message, Status: r.Status}, nil
}

func (m *memIdem) Record(_ context.Context, r repo.IdempotencyRecord) error {
	m.recs[r.ClientID+"|"+r.Scope+"|"+r.Key] = r
	return nil
}

func (m *memIdem) seen(_ context.Context, clientID, scope, key string, _ time.Time) (bool, error) {
	_, ok := m.recs[clientID+"|"+scope+"|"+key]
	return ok, nil
}

var testView = &services.ChallengeView{ID: "ch-next", Question: "What is 2 + 3?"}

func resultFor(st antispam.State) *services.SubmissionResult {
	out := antispam.Outcome{State: st, Message: st.String() + " message"}
	switch st {
	case antispam.Accepted, antispam.RejectedDuplicate:
		out.ClearFields, out.ClearAnswer = true, true
	case antispam.RejectedChallenge:
		out.ClearAnswer = true
	case antispam.RejectedValidation:
		out.FieldErrors = antispam.FieldErrors{"email": "Please enter a valid email"}
	}
	return &services.SubmissionResult{Outcome: out, Challenge: testView}
}

func submissionRouter(h *Handlers, idem *memIdem) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	var lookup middleware.IdempotencyLookup
	if idem != nil {
		lookup = idem.seen
	}
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, lookup))
	r.GET("/challenge", h.GetChallenge)
	r.POST("/subscribe", h.Subscribe)
	r.POST("/reviews", h.SubmitReview)
	r.POST("/contact", h.SubmitContact)
	return r
}

func post(r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestChallengeAnswer_AcceptsAnyJSONValue(t *testing.T) {
	cases := map[string]ChallengeAnswer{
		`"7"`:     "7",
		`7`:       "7",
		` 12 `:    "12",
		`null`:    "",
		`"x"`:     "x",
		`true`:    "true",
		`{}`:      "{}",
		`[3, 4]`:  "[3, 4]",
		`{"a":1}`: `{"a":1}`,
	}
	for in, want := range cases {
		var a ChallengeAnswer
		if err := json.Unmarshal([]byte(in), &a); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if a != want {
			t.Fatalf("unmarshal %s = %q; want %q", in, a, want)
		}
	}
	for _, in := range []string{`true`, `{}`, `[3, 4]`, `[7]`} {
		var a ChallengeAnswer
		if err := json.Unmarshal([]byte(in), &a); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if (antispam.Problem{A: 3, B: 4}).Check(string(a)) {
			t.Fatalf("%s must never pass a challenge", in)
		}
	}
}

func TestGetChallenge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ok", nil, http.StatusOK},
		{"unknown form", services.ErrUnknownForm, http.StatusBadRequest},
		{"store down", errors.New("db down"), http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotForm string
			h := New(Services{Submissions: stubSubmissions{
				issue: func(_ context.Context, form string) (*services.ChallengeView, error) {
					gotForm = form
					if tc.err != nil {
						return nil, tc.err
					}
					return testView, nil
				},
			}})
			w := httptest.NewRecorder()
			submissionRouter(h, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/challenge?form=review", nil))

			if w.Code != tc.wantStatus {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.wantStatus, w.Body.String())
			}
			if gotForm != "review" {
				t.Fatalf("form passed = %q", gotForm)
			}
			if tc.err == nil {
				var v services.ChallengeView
				if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil || v.ID != "ch-next" || v.Question == "" {
					t.Fatalf("body = %s (%v)", w.Body.String(), err)
				}
				if w.Header().Get("Cache-Control") != "no-store" {
					t.Fatalf("challenge must not be cached")
				}
			}
		})
	}
}

func TestSubscribe_OutcomeMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		state      antispam.State
		wantStatus int
		wantCode   string
	}{
		{antispam.Accepted, http.StatusCreated, ""},
		{antispam.RejectedDuplicate, http.StatusOK, ""},
		{antispam.RejectedBot, http.StatusBadRequest, ErrCodeBotDetected},
		{antispam.RejectedChallenge, http.StatusBadRequest, ErrCodeChallengeFailed},
		{antispam.RejectedValidation, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
		{antispam.RejectedStoreError, http.StatusServiceUnavailable, ErrCodeStoreUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			h := New(Services{Submissions: stubSubmissions{
				submit: func(context.Context, services.Submission) (*services.SubmissionResult, error) {
					return resultFor(tc.state), nil
				},
			}})
			w := post(submissionRouter(h, nil), "/subscribe", `{"email":"a@b.co"}`, nil)

			if w.Code != tc.wantStatus {
				t.Fatalf("status=%d want %d", w.Code, tc.wantStatus)
			}
			var body SubmissionResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("json: %v", err)
			}
			if body.Outcome != tc.state.String() || body.Code != tc.wantCode || body.Message == "" {
				t.Fatalf("unexpected body: %+v", body)
			}
			if body.Challenge == nil || body.Challenge.ID != "ch-next" {
				t.Fatalf("next challenge missing: %+v", body)
			}
			if (tc.wantCode != "") != (body.RequestID != "") {
				t.Fatalf("request_id should accompany rejections only: %+v", body)
			}
			if tc.state == antispam.RejectedValidation && body.Fields["email"] == "" {
				t.Fatalf("field errors missing: %+v", body)
			}
		})
	}
}

func TestSubmissions_MapFieldsPerForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got services.Submission
	h := New(Services{Submissions: stubSubmissions{
		submit: func(_ context.Context, sub services.Submission) (*services.SubmissionResult, error) {
			got = sub
			return resultFor(antispam.Accepted), nil
		},
	}})
	r := submissionRouter(h, nil)

	post(r, "/subscribe", `{"first_name":"Ana","last_name":"Lopez","email":"ana@example.com","phone":"555-123-4567","challenge_id":"c1","challenge_answer":7,"website":""}`, nil)
	if got.Form != domain.FormSubscribe || got.ChallengeID != "c1" || got.Answer != "7" ||
		got.Fields[antispam.FieldFirstName] != "Ana" || got.Fields[antispam.FieldPhone] != "555-123-4567" {
		t.Fatalf("subscribe mapped to %+v", got)
	}

	post(r, "/reviews", `{"name":"Sam","relationship":"audience","review":"Great show, loved it","permission":true,"challenge_id":"c2","challenge_answer":"9","website":"http://spam"}`, nil)
	if got.Form != domain.FormReview || got.Honeypot != "http://spam" || got.Answer != "9" ||
		got.Fields[antispam.FieldPermission] != true || got.Fields[antispam.FieldReview] != "Great show, loved it" {
		t.Fatalf("review mapped to %+v", got)
	}

	post(r, "/contact", `{"name":"Jo","email":"jo@example.com","message":"Book me please!","challenge_id":"c3","challenge_answer":"4"}`, nil)
	if got.Form != domain.FormContact || got.Fields[antispam.FieldMessage] != "Book me please!" {
		t.Fatalf("contact mapped to %+v", got)
	}

	// Non-numeric answers reach the gate and fail the challenge there.
	for body, want := range map[string]string{
		`{"challenge_id":"c4","challenge_answer":true}`: "true",
		`{"challenge_id":"c4","challenge_answer":{}}`:   "{}",
		`{"challenge_id":"c4","challenge_answer":[7]}`:  "[7]",
	} {
		got = services.Submission{}
		if w := post(r, "/subscribe", body, nil); w.Code != http.StatusCreated || got.ChallengeID != "c4" || got.Answer != want {
			t.Fatalf("%s: status=%d answer=%q", body, w.Code, got.Answer)
		}
	}
}

func TestSubscribe_BadJSONAndServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := New(Services{Submissions: stubSubmissions{
		submit: func(context.Context, services.Submission) (*services.SubmissionResult, error) {
			return nil, antispam.ErrSubmitInProgress
		},
	}})
	r := submissionRouter(h, nil)

	if w := post(r, "/subscribe", `{"email":`, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed JSON: status=%d", w.Code)
	}
	w := post(r, "/subscribe", `{}`, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("in progress: status=%d", w.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &er)
	if er.Code != ErrCodeSubmitInProgress {
		t.Fatalf("unexpected envelope: %+v", er)
	}
}

func TestSubscribe_IdempotentReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calls := 0
	idem := newMemIdem()
	h := New(Services{
		Idempotency: idem,
		Submissions: stubSubmissions{
			submit: func(context.Context, services.Submission) (*services.SubmissionResult, error) {
				calls++
				return resultFor(antispam.Accepted), nil
			},
		},
	})
	r := submissionRouter(h, idem)
	key := map[string]string{middleware.HeaderIdempotencyKey: "retry-1"}

	w1 := post(r, "/subscribe", `{"email":"a@b.co"}`, key)
	if w1.Code != http.StatusCreated || w1.Header().Get("Idempotency-Replayed") != "" {
		t.Fatalf("first: status=%d replayed=%q", w1.Code, w1.Header().Get("Idempotency-Replayed"))
	}

	w2 := post(r, "/subscribe", `{"email":"a@b.co"}`, key)
	if w2.Code != http.StatusCreated || w2.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("replay: status=%d replayed=%q", w2.Code, w2.Header().Get("Idempotency-Replayed"))
	}
	var body SubmissionResponse
	_ = json.Unmarshal(w2.Body.Bytes(), &body)
	if body.Outcome != "accepted" || body.Message == "" || !body.ClearFields {
		t.Fatalf("replayed body: %+v", body)
	}
	if calls != 1 {
		t.Fatalf("gate ran %d times; want 1", calls)
	}

	// Same key on another form is a different scope.
	if w := post(r, "/contact", `{}`, key); w.Header().Get("Idempotency-Replayed") != "" || calls != 2 {
		t.Fatalf("other route should not replay (calls=%d)", calls)
	}
}

func TestSubscribe_RejectionsAreNotRecorded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	idem := newMemIdem()
	h := New(Services{
		Idempotency: idem,
		Submissions: stubSubmissions{
			submit: func(context.Context, services.Submission) (*services.SubmissionResult, error) {
				return resultFor(antispam.RejectedValidation), nil
			},
		},
	})
	post(submissionRouter(h, idem), "/subscribe", `{}`, map[string]string{middleware.HeaderIdempotencyKey: "k"})
	if len(idem.recs) != 0 {
		t.Fatalf("rejected outcome recorded: %+v", idem.recs)
	}
}

func TestSubscribe_SameKeyInFlight_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	entered := make(chan struct{})
	release := make(chan struct{})
	h := New(Services{Submissions: stubSubmissions{
		submit: func(context.Context, services.Submission) (*services.SubmissionResult, error) {
			close(entered)
			<-release
			return resultFor(antispam.Accepted), nil
		},
	}})
	r := submissionRouter(h, nil)
	key := map[string]string{middleware.HeaderIdempotencyKey: "dup-click"}

	done := make(chan *httptest.ResponseRecorder)
	go func() { done <- post(r, "/subscribe", `{}`, key) }()
	<-entered

	w := post(r, "/subscribe", `{}`, key)
	close(release)
	first := <-done

	if w.Code != http.StatusConflict {
		t.Fatalf("second click: status=%d want 409", w.Code)
	}
	if first.Code != http.StatusCreated {
		t.Fatalf("first click: status=%d want 201", first.Code)
	}
}
