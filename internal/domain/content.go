package domain

import "time"

// GalleryImage is a photo shown in the masonry gallery.
type GalleryImage struct {
	ID           string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title"         gorm:"type:varchar(200);not null"`
	ImageURL     string    `json:"image_url"     gorm:"type:text;not null"`
	AspectRatio  string    `json:"aspect_ratio"  gorm:"type:varchar(16);not null;default:'square'"`
	Category     string    `json:"category"      gorm:"type:varchar(16);not null"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for GalleryImage.
func (GalleryImage) TableName() string { return "gallery_images" }

// Video is an embedded performance, clip or podcast appearance.
type Video struct {
	ID           string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title"         gorm:"type:varchar(200);not null"`
	Thumbnail    string    `json:"thumbnail"     gorm:"type:text;not null"`
	Duration     string    `json:"duration"      gorm:"type:varchar(16)"`
	Category     string    `json:"category"      gorm:"type:varchar(16);not null"`
	EmbedURL     *string   `json:"embed_url,omitempty" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for Video.
func (Video) TableName() string { return "videos" }

// SocialPost is an embedded post on the social grid.
type SocialPost struct {
	ID           string    `json:"id"                  gorm:"type:char(36);primaryKey"`
	Type         string    `json:"type"                gorm:"type:varchar(16);not null"`
	EmbedURL     string    `json:"embed_url"           gorm:"type:text;not null"`
	Thumbnail    *string   `json:"thumbnail,omitempty" gorm:"type:text"`
	Caption      *string   `json:"caption,omitempty"   gorm:"type:varchar(500)"`
	Size         string    `json:"size"                gorm:"type:varchar(16);not null;default:'medium'"`
	DisplayOrder int       `json:"display_order"       gorm:"not null;default:0;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for SocialPost.
func (SocialPost) TableName() string { return "social_links" }

// Show is a scheduled live performance. Only active shows are listed publicly.
// Date is a calendar day (YYYY-MM-DD) and Time is free text ("8:00 PM").
type Show struct {
	ID           string    `json:"id"                    gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name"                  gorm:"type:varchar(200);not null"`
	Venue        string    `json:"venue"                 gorm:"type:varchar(200);not null"`
	City         string    `json:"city"                  gorm:"type:varchar(100);not null"`
	Date         string    `json:"date"                  gorm:"type:varchar(10);not null;index"`
	Time         *string   `json:"time,omitempty"        gorm:"type:varchar(32)"`
	TicketURL    *string   `json:"ticket_url,omitempty"  gorm:"type:text"`
	Description  *string   `json:"description,omitempty" gorm:"type:text"`
	IsActive     bool      `json:"is_active"             gorm:"not null;index"`
	DisplayOrder int       `json:"display_order"         gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for Show.
func (Show) TableName() string { return "shows" }

// Allowed enumerations for content fields. Handlers validate against these.
var (
	GalleryAspectRatios = []string{"tall", "wide", "square"}
	GalleryCategories   = []string{"performance", "studio", "candid", "press"}
	VideoCategories     = []string{"performance", "clip", "podcast"}
	SocialTypes         = []string{"instagram", "upscroll", "youtube"}
	SocialSizes         = []string{"small", "medium", "large", "wide"}
)
