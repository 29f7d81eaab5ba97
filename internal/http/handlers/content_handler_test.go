package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/services"
)

type stubShows struct {
	ContentService
	create    func(ctx context.Context, in services.ShowInput) (*domain.Show, error)
	update    func(ctx context.Context, id string, in services.ShowInput) (*domain.Show, error)
	setActive func(ctx context.Context, id string, active bool) error
	del       func(ctx context.Context, id string) error
}

func (s stubShows) CreateShow(ctx context.Context, in services.ShowInput) (*domain.Show, error) {
	return s.create(ctx, in)
}

func (s stubShows) UpdateShow(ctx context.Context, id string, in services.ShowInput) (*domain.Show, error) {
	return s.update(ctx, id, in)
}

func (s stubShows) SetShowActive(ctx context.Context, id string, active bool) error {
	return s.setActive(ctx, id, active)
}

func (s stubShows) DeleteShow(ctx context.Context, id string) error { return s.del(ctx, id) }

const showID = "8c1d3a52-6b7e-4f0a-9d2c-3e4f5a6b7c8d"

func showRouter(s stubShows) *gin.Engine {
	h := New(Services{Content: s})
	r := gin.New()
	r.POST("/admin/shows", h.AdminCreateShow)
	r.PUT("/admin/shows/:id", h.AdminUpdateShow)
	r.PUT("/admin/shows/:id/active", h.AdminSetShowActive)
	r.DELETE("/admin/shows/:id", h.AdminDeleteShow)
	return r
}

func TestAdminCreateShow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := showRouter(stubShows{create: func(_ context.Context, in services.ShowInput) (*domain.Show, error) {
		if in.Date == "next friday" {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", services.ErrInvalidContent)
		}
		return &domain.Show{ID: showID, Name: in.Name, Date: in.Date, IsActive: true}, nil
	}})

	w := send(r, http.MethodPost, "/admin/shows", `{"name":"Late Set","venue":"The Cellar","city":"New York, NY","date":"2026-11-14"}`)
	var show domain.Show
	if err := json.Unmarshal(w.Body.Bytes(), &show); err != nil || w.Code != http.StatusCreated || !show.IsActive {
		t.Fatalf("create: status=%d body=%s", w.Code, w.Body.String())
	}

	w = send(r, http.MethodPost, "/admin/shows", `{"name":"Late Set","venue":"The Cellar","city":"New York, NY","date":"next friday"}`)
	var er ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &er)
	if w.Code != http.StatusBadRequest || er.Code != ErrCodeInvalidContent || er.Message == "" {
		t.Fatalf("invalid: status=%d body=%+v", w.Code, er)
	}

	if w := send(r, http.MethodPost, "/admin/shows", `{"name":`); w.Code != http.StatusBadRequest || errorCode(t, w) != ErrCodeBadRequest {
		t.Fatalf("malformed: status=%d", w.Code)
	}
}

func TestAdminUpdateAndDeleteShow_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := showRouter(stubShows{
		update: func(context.Context, string, services.ShowInput) (*domain.Show, error) {
			return nil, services.ErrContentNotFound
		},
		del: func(context.Context, string) error { return services.ErrContentNotFound },
	})

	if w := send(r, http.MethodPut, "/admin/shows/"+showID, `{"name":"x"}`); w.Code != http.StatusNotFound {
		t.Fatalf("update: status=%d", w.Code)
	}
	if w := send(r, http.MethodDelete, "/admin/shows/"+showID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("delete: status=%d", w.Code)
	}
	if w := send(r, http.MethodDelete, "/admin/shows/nope", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status=%d", w.Code)
	}
}

func TestAdminSetShowActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got *bool
	r := showRouter(stubShows{setActive: func(_ context.Context, _ string, active bool) error {
		got = &active
		return nil
	}})

	if w := send(r, http.MethodPut, "/admin/shows/"+showID+"/active", `{"is_active":false}`); w.Code != http.StatusNoContent {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if got == nil || *got {
		t.Fatalf("SetShowActive got %v, want false", got)
	}

	got = nil
	if w := send(r, http.MethodPut, "/admin/shows/"+showID+"/active", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing is_active: status=%d", w.Code)
	}
	if got != nil {
		t.Fatalf("service must not be called without is_active")
	}
}
