package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/standupsite/promo-backend/internal/domain"
)

func TestContentService_Gallery_CRUD(t *testing.T) {
	s := NewContentService(newSvcDB(t))
	ctx := context.Background()

	first, err := s.CreateGallery(ctx, GalleryInput{Title: "Opening night", ImageURL: "https://cdn.example/1.jpg", Category: "performance"})
	if err != nil {
		t.Fatalf("CreateGallery: %v", err)
	}
	if first.AspectRatio != "square" || first.DisplayOrder != 0 || first.ID == "" {
		t.Fatalf("defaults not applied: %+v", first)
	}
	second, err := s.CreateGallery(ctx, GalleryInput{Title: "Backstage", ImageURL: "https://cdn.example/2.jpg", AspectRatio: "tall", Category: "candid"})
	if err != nil {
		t.Fatalf("CreateGallery #2: %v", err)
	}
	if second.DisplayOrder != 1 {
		t.Fatalf("display_order should default to the count, got %d", second.DisplayOrder)
	}

	order := 5
	upd, err := s.UpdateGallery(ctx, first.ID, GalleryInput{Title: "Opening night (2)", ImageURL: "https://cdn.example/1b.jpg", AspectRatio: "wide", Category: "press", Order: &order})
	if err != nil {
		t.Fatalf("UpdateGallery: %v", err)
	}
	if upd.Title != "Opening night (2)" || upd.AspectRatio != "wide" || upd.DisplayOrder != 5 {
		t.Fatalf("update not applied: %+v", upd)
	}

	list, err := s.ListGallery(ctx)
	if err != nil || len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("ListGallery order: err=%v %+v", err, list)
	}

	if err := s.DeleteGallery(ctx, second.ID); err != nil {
		t.Fatalf("DeleteGallery: %v", err)
	}
	if err := s.DeleteGallery(ctx, second.ID); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := s.UpdateGallery(ctx, "missing", GalleryInput{Title: "x", ImageURL: "https://cdn.example/x.jpg", Category: "studio"}); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("update missing: %v", err)
	}
}

func TestContentService_Validation(t *testing.T) {
	s := NewContentService(newSvcDB(t))
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
		want string
	}{
		{"gallery missing title", func() error {
			_, err := s.CreateGallery(ctx, GalleryInput{ImageURL: "https://cdn.example/1.jpg", Category: "studio"})
			return err
		}, "title is required"},
		{"gallery bad category", func() error {
			_, err := s.CreateGallery(ctx, GalleryInput{Title: "t", ImageURL: "https://cdn.example/1.jpg", Category: "selfie"})
			return err
		}, "category must be one of"},
		{"gallery bad url", func() error {
			_, err := s.CreateGallery(ctx, GalleryInput{Title: "t", ImageURL: "not a url", Category: "studio"})
			return err
		}, "image_url must be a URL"},
		{"video bad category", func() error {
			_, err := s.CreateVideo(ctx, VideoInput{Title: "t", Thumbnail: "https://cdn.example/t.jpg", Category: "movie"})
			return err
		}, "category must be one of"},
		{"social bad size", func() error {
			_, err := s.CreateSocial(ctx, SocialInput{Type: "instagram", EmbedURL: "https://instagram.com/p/1", Size: "huge"})
			return err
		}, "size must be one of"},
		{"show bad date", func() error {
			_, err := s.CreateShow(ctx, ShowInput{Name: "n", Venue: "v", City: "c", Date: "14/11/2026"})
			return err
		}, "date must be YYYY-MM-DD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, ErrInvalidContent) {
				t.Fatalf("want ErrInvalidContent, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestContentService_VideoAndSocial(t *testing.T) {
	s := NewContentService(newSvcDB(t))
	ctx := context.Background()

	embed := "https://www.youtube.com/embed/abc"
	v, err := s.CreateVideo(ctx, VideoInput{Title: "Late Set", Thumbnail: "https://cdn.example/t.jpg", Duration: "12:34", Category: "clip", EmbedURL: &embed})
	if err != nil {
		t.Fatalf("CreateVideo: %v", err)
	}
	if v.EmbedURL == nil || *v.EmbedURL != embed {
		t.Fatalf("embed_url not copied: %+v", v)
	}
	if _, err := s.UpdateVideo(ctx, v.ID, VideoInput{Title: "Late Set (uncut)", Thumbnail: "https://cdn.example/t.jpg", Category: "performance"}); err != nil {
		t.Fatalf("UpdateVideo: %v", err)
	}
	if err := s.DeleteVideo(ctx, v.ID); err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}

	p, err := s.CreateSocial(ctx, SocialInput{Type: "youtube", EmbedURL: "https://youtube.com/shorts/xyz"})
	if err != nil {
		t.Fatalf("CreateSocial: %v", err)
	}
	if p.Size != "medium" {
		t.Fatalf("size default = %q", p.Size)
	}
	list, err := s.ListSocial(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListSocial: %v %d", err, len(list))
	}
	if _, err := s.UpdateSocial(ctx, p.ID, SocialInput{Type: "instagram", EmbedURL: "https://instagram.com/p/2", Size: "wide"}); err != nil {
		t.Fatalf("UpdateSocial: %v", err)
	}
	if err := s.DeleteSocial(ctx, p.ID); err != nil {
		t.Fatalf("DeleteSocial: %v", err)
	}
	if vids, _ := s.ListVideos(ctx); len(vids) != 0 {
		t.Fatalf("videos left: %d", len(vids))
	}
}

func TestContentService_Shows(t *testing.T) {
	s := NewContentService(newSvcDB(t))
	ctx := context.Background()

	later, err := s.CreateShow(ctx, ShowInput{Name: "Late Set", Venue: "The Cellar", City: "New York, NY", Date: "2026-12-01"})
	if err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	if !later.IsActive {
		t.Fatalf("new shows should be active by default")
	}
	off := false
	hidden, err := s.CreateShow(ctx, ShowInput{Name: "Private", Venue: "Loft", City: "Boston, MA", Date: "2026-11-01", Active: &off})
	if err != nil || hidden.IsActive {
		t.Fatalf("CreateShow inactive: %v %+v", err, hidden)
	}
	sooner, err := s.CreateShow(ctx, ShowInput{Name: "Early Set", Venue: "The Cellar", City: "New York, NY", Date: "2026-11-14"})
	if err != nil {
		t.Fatalf("CreateShow #3: %v", err)
	}
	if sooner.DisplayOrder != 2 {
		t.Fatalf("display_order = %d; want 2", sooner.DisplayOrder)
	}

	up, err := s.ListUpcomingShows(ctx)
	if err != nil || len(up) != 2 || up[0].ID != sooner.ID {
		t.Fatalf("ListUpcomingShows: %v %+v", err, up)
	}

	if err := s.SetShowActive(ctx, hidden.ID, true); err != nil {
		t.Fatalf("SetShowActive: %v", err)
	}
	if up, _ = s.ListUpcomingShows(ctx); len(up) != 3 || up[0].ID != hidden.ID {
		t.Fatalf("after toggle: %+v", up)
	}
	if err := s.SetShowActive(ctx, "missing", true); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("toggle missing: %v", err)
	}

	// Update keeps visibility unless is_active is sent.
	tm := "9:30 PM"
	upd, err := s.UpdateShow(ctx, later.ID, ShowInput{Name: "Late Set", Venue: "The Cellar", City: "New York, NY", Date: "2026-12-02", Time: &tm})
	if err != nil {
		t.Fatalf("UpdateShow: %v", err)
	}
	if !upd.IsActive || upd.Date != "2026-12-02" || upd.Time == nil || *upd.Time != tm {
		t.Fatalf("update not applied: %+v", upd)
	}

	all, _ := s.ListShows(ctx)
	if len(all) != 3 {
		t.Fatalf("ListShows len=%d", len(all))
	}
	if err := s.DeleteShow(ctx, later.ID); err != nil {
		t.Fatalf("DeleteShow: %v", err)
	}
	var n int64
	s.DB.Model(&domain.Show{}).Count(&n)
	if n != 2 {
		t.Fatalf("shows left = %d", n)
	}
}
