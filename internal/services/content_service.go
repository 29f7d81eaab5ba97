// Package services – ContentService
//
// ContentService manages the admin-curated parts of the site: the photo
// gallery, videos, embedded social posts and the show calendar. Inputs are
// request DTOs; they are validated (required fields, lengths, URLs, and the
// fixed enumerations in package domain) and mapped onto the GORM models with
// copier. Updates replace every editable field of the row.
package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
)

var contentValidate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}()

// GalleryInput is the editable part of a gallery image.
type GalleryInput struct {
	Title       string `json:"title"        validate:"required,max=200" example:"Live at the Cellar"`
	ImageURL    string `json:"image_url"    validate:"required,url"`
	AspectRatio string `json:"aspect_ratio" example:"wide"`
	Category    string `json:"category"     validate:"required" example:"performance"`
	Order       *int   `json:"display_order"`
}

// VideoInput is the editable part of a video.
type VideoInput struct {
	Title     string  `json:"title"     validate:"required,max=200"`
	Thumbnail string  `json:"thumbnail" validate:"required,url"`
	Duration  string  `json:"duration"  validate:"max=16" example:"12:34"`
	Category  string  `json:"category"  validate:"required" example:"clip"`
	EmbedURL  *string `json:"embed_url" validate:"omitempty,url"`
	Order     *int    `json:"display_order"`
}

// SocialInput is the editable part of a social post.
type SocialInput struct {
	Type      string  `json:"type"      validate:"required" example:"instagram"`
	EmbedURL  string  `json:"embed_url" validate:"required,url"`
	Thumbnail *string `json:"thumbnail" validate:"omitempty,url"`
	Caption   *string `json:"caption"   validate:"omitempty,max=500"`
	Size      string  `json:"size"      example:"medium"`
	Order     *int    `json:"display_order"`
}

// ShowInput is the editable part of a show.
type ShowInput struct {
	Name        string  `json:"name"        validate:"required,max=200" example:"Late Set"`
	Venue       string  `json:"venue"       validate:"required,max=200" example:"The Cellar"`
	City        string  `json:"city"        validate:"required,max=100" example:"New York, NY"`
	Date        string  `json:"date"        validate:"required" example:"2026-11-14"`
	Time        *string `json:"time"        validate:"omitempty,max=32" example:"8:00 PM"`
	TicketURL   *string `json:"ticket_url"  validate:"omitempty,url"`
	Description *string `json:"description"`
	Active      *bool   `json:"is_active"`
	Order       *int    `json:"display_order"`
}

// ContentService provides CRUD over the curated content tables.
type ContentService struct {
	DB *gorm.DB
}

// NewContentService constructs a ContentService.
func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidContent, fmt.Sprintf(format, args...))
}

// checkInput runs the struct-tag rules and reports the first failing field.
func checkInput(in any) error {
	err := contentValidate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		switch fe.Tag() {
		case "required":
			return invalid("%s is required", fe.Field())
		case "url":
			return invalid("%s must be a URL", fe.Field())
		case "max":
			return invalid("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return invalid("%s is invalid", fe.Field())
	}
	return err
}

func checkEnum(field, v string, allowed []string) error {
	if !slices.Contains(allowed, v) {
		return invalid("%s must be one of %s", field, strings.Join(allowed, ", "))
	}
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func notFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrContentNotFound
	}
	return err
}

// nextOrder returns the explicit order when given, otherwise the current row
// count so new items land at the end.
func nextOrder[T repo.Content](ctx context.Context, db *gorm.DB, explicit *int) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}
	n, err := repo.CountContent[T](ctx, db)
	return int(n), err
}

// create maps in onto a fresh T, lets fill finish it, and inserts it.
func create[T repo.Content](ctx context.Context, db *gorm.DB, in any, order *int, fill func(*T, string, int)) (*T, error) {
	var v T
	if err := copier.Copy(&v, in); err != nil {
		return nil, err
	}
	pos, err := nextOrder[T](ctx, db, order)
	if err != nil {
		return nil, err
	}
	fill(&v, uuid.NewString(), pos)
	if err := repo.CreateContent(ctx, db, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// replace maps in onto a fresh T carrying the identity and bookkeeping of the
// stored row, and writes every column.
func replace[T repo.Content](ctx context.Context, db *gorm.DB, id string, in any, fill func(next, cur *T)) (*T, error) {
	cur, err := repo.GetContent[T](ctx, db, id)
	if err != nil {
		return nil, notFound(err)
	}
	var next T
	if err := copier.Copy(&next, in); err != nil {
		return nil, err
	}
	fill(&next, cur)
	if err := repo.SaveContent(ctx, db, id, &next); err != nil {
		return nil, notFound(err)
	}
	return repo.GetContent[T](ctx, db, id)
}

func remove[T repo.Content](ctx context.Context, db *gorm.DB, id string) error {
	return notFound(repo.DeleteContent[T](ctx, db, id))
}

// ---- gallery ----

func (in *GalleryInput) check() error {
	if err := checkInput(in); err != nil {
		return err
	}
	in.AspectRatio = orDefault(in.AspectRatio, "square")
	if err := checkEnum("aspect_ratio", in.AspectRatio, domain.GalleryAspectRatios); err != nil {
		return err
	}
	return checkEnum("category", in.Category, domain.GalleryCategories)
}

// ListGallery returns every gallery image in display order.
func (s *ContentService) ListGallery(ctx context.Context) ([]domain.GalleryImage, error) {
	return repo.ListContent[domain.GalleryImage](ctx, s.DB)
}

// CreateGallery adds a gallery image.
func (s *ContentService) CreateGallery(ctx context.Context, in GalleryInput) (*domain.GalleryImage, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	return create(ctx, s.DB, &in, in.Order, func(g *domain.GalleryImage, id string, pos int) {
		g.ID, g.DisplayOrder = id, pos
	})
}

// UpdateGallery replaces a gallery image's fields.
func (s *ContentService) UpdateGallery(ctx context.Context, id string, in GalleryInput) (*domain.GalleryImage, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	return replace(ctx, s.DB, id, &in, func(next, cur *domain.GalleryImage) {
		next.ID, next.CreatedAt, next.DisplayOrder = cur.ID, cur.CreatedAt, cur.DisplayOrder
		if in.Order != nil {
			next.DisplayOrder = *in.Order
		}
	})
}

// DeleteGallery removes a gallery image.
func (s *ContentService) DeleteGallery(ctx context.Context, id string) error {
	return remove[domain.GalleryImage](ctx, s.DB, id)
}

// ---- videos ----

func (in *VideoInput) check() error {
	if err := checkInput(in); err != nil {
		return err
	}
	return checkEnum("category", in.Category, domain.VideoCategories)
}

// ListVideos returns every video in display order.
func (s *ContentService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	return repo.ListContent[domain.Video](ctx, s.DB)
}

// CreateVideo adds a video.
func (s *ContentService) CreateVideo(ctx context.Context, in VideoInput) (*domain.Video, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	return create(ctx, s.DB, &in, in.Order, func(v *domain.Video, id string, pos int) {
		v.ID, v.DisplayOrder = id, pos
	})
}

// UpdateVideo replaces a video's fields.
func (s *ContentService) UpdateVideo(ctx context.Context, id string, in VideoInput) (*domain.Video, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	return replace(ctx, s.DB, id, &in, func(next, cur *domain.Video) {
		next.ID, next.CreatedAt, next.DisplayOrder = cur.ID, cur.CreatedAt, cur.DisplayOrder
		if in.Order != nil {
			next.DisplayOrder = *in.Order
		}
	})
}

// DeleteVideo removes a video.
func (s *ContentService) DeleteVideo(ctx context.Context, id string) error {
	return remove[domain.Video](ctx, s.DB, id)
}

// ---- social ----

func (in *SocialInput) check() error {
	if err := checkInput(in); err != nil {
		return err
	}
	in.Size = orDefault(in.Size, "medium")
	if err := checkEnum("type", in.Type, domain.SocialTypes); err != nil {
		return err
	}
	return checkEnum("size", in.Size, domain.SocialSizes)
}

// ListSocial returns every social post in display order.
func (s *ContentService) ListSocial(ctx context.Context) ([]domain.SocialPost, error) {
	return repo.ListContent[domain.SocialPost](ctx, s.DB)
}

// CreateSocial adds a social post.
func (s *ContentService) CreateSocial(ctx context.Context, in SocialInput) (*domain.SocialPost, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	return create(ctx, s.DB, &in, in.Order, func(p *domain.SocialPost, id string, pos int) {
		p.ID, p.DisplayOrder = id, pos
	})
}

// UpdateSocial replaces a social post's fields.
func (s *ContentService) UpdateSocial(ctx context.Context, id string, in SocialInput) (*domain.SocialPost, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	return replace(ctx, s.DB, id, &in, func(next, cur *domain.SocialPost) {
		next.ID, next.CreatedAt, next.DisplayOrder = cur.ID, cur.CreatedAt, cur.DisplayOrder
		if in.Order != nil {
			next.DisplayOrder = *in.Order
		}
	})
}

// DeleteSocial removes a social post.
func (s *ContentService) DeleteSocial(ctx context.Context, id string) error {
	return remove[domain.SocialPost](ctx, s.DB, id)
}

// ---- shows ----

func (in *ShowInput) check() error {
	if err := checkInput(in); err != nil {
		return err
	}
	if _, err := time.Parse(time.DateOnly, in.Date); err != nil {
		return invalid("date must be YYYY-MM-DD")
	}
	return nil
}

// ListShows returns every show, active or not, for the admin calendar.
func (s *ContentService) ListShows(ctx context.Context) ([]domain.Show, error) {
	return repo.ListContent[domain.Show](ctx, s.DB)
}

// ListUpcomingShows returns the active shows in calendar order.
func (s *ContentService) ListUpcomingShows(ctx context.Context) ([]domain.Show, error) {
	return repo.ListActiveShows(ctx, s.DB)
}

// CreateShow adds a show. New shows are active unless is_active is false.
func (s *ContentService) CreateShow(ctx context.Context, in ShowInput) (*domain.Show, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	return create(ctx, s.DB, &in, in.Order, func(sh *domain.Show, id string, pos int) {
		sh.ID, sh.DisplayOrder = id, pos
		sh.IsActive = in.Active == nil || *in.Active
	})
}

// UpdateShow replaces a show's fields. Visibility is kept unless is_active
// is given.
func (s *ContentService) UpdateShow(ctx context.Context, id string, in ShowInput) (*domain.Show, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	return replace(ctx, s.DB, id, &in, func(next, cur *domain.Show) {
		next.ID, next.CreatedAt, next.DisplayOrder = cur.ID, cur.CreatedAt, cur.DisplayOrder
		next.IsActive = cur.IsActive
		if in.Order != nil {
			next.DisplayOrder = *in.Order
		}
		if in.Active != nil {
			next.IsActive = *in.Active
		}
	})
}

// SetShowActive shows or hides a show on the public calendar.
func (s *ContentService) SetShowActive(ctx context.Context, id string, active bool) error {
	return notFound(repo.SetShowActive(ctx, s.DB, id, active))
}

// DeleteShow removes a show.
func (s *ContentService) DeleteShow(ctx context.Context, id string) error {
	return remove[domain.Show](ctx, s.DB, id)
}
