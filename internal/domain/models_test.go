package domain

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		(Subscriber{}).TableName():   "subscribers",
		(Review{}).TableName():       "reviews",
		(Contact{}).TableName():      "contacts",
		(AdminSession{}).TableName(): "admin_sessions",
		(GalleryImage{}).TableName(): "gallery_images",
		(Video{}).TableName():        "videos",
		(SocialPost{}).TableName():   "social_links",
		(Show{}).TableName():         "shows",
		(Challenge{}).TableName():    "challenges",
		(Idempotency{}).TableName():  "idempotency",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestMigrations_Indexes(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(&Subscriber{}, &Review{}, &Contact{}, &Challenge{}, &Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	if !m.HasIndex(&Subscriber{}, "ux_subscribers_email") {
		t.Fatalf("expected unique index ux_subscribers_email")
	}
	if !m.HasIndex(&Review{}, "idx_reviews_status_created") {
		t.Fatalf("expected index idx_reviews_status_created")
	}
	if !m.HasIndex(&Idempotency{}, "ux_client_scope_key") {
		t.Fatalf("expected unique index ux_client_scope_key")
	}
}

func TestSubscriber_UniqueEmail(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(&Subscriber{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	first := &Subscriber{ID: "s1", FirstName: "Ana", LastName: "Lee", Email: "ana@example.com", Phone: "5551234567", CreatedAt: time.Now().UTC()}
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	dup := &Subscriber{ID: "s2", FirstName: "Other", LastName: "Person", Email: "ana@example.com", Phone: "5550000000", CreatedAt: time.Now().UTC()}
	if err := db.Create(dup).Error; err == nil {
		t.Fatalf("expected unique violation on duplicate email")
	}

	var n int64
	db.Model(&Subscriber{}).Count(&n)
	if n != 1 {
		t.Fatalf("expected 1 subscriber row, got %d", n)
	}
}

func TestReview_CheckConstraints(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(&Review{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	ok := &Review{ID: "r1", Name: "Sam", Relationship: RelationshipPeer, ReviewText: "Sharp and kind.", Status: ReviewPending}
	if err := db.Create(ok).Error; err != nil {
		t.Fatalf("valid review insert: %v", err)
	}

	badStatus := &Review{ID: "r2", Name: "Sam", Relationship: RelationshipPeer, ReviewText: "Sharp and kind.", Status: "archived"}
	if err := db.Create(badStatus).Error; err == nil {
		t.Fatalf("expected check violation for unknown status")
	}

	badRel := &Review{ID: "r3", Name: "Sam", Relationship: "cousin", ReviewText: "Sharp and kind.", Status: ReviewPending}
	if err := db.Create(badRel).Error; err == nil {
		t.Fatalf("expected check violation for unknown relationship")
	}
}

func TestValidForm(t *testing.T) {
	for _, f := range []string{FormSubscribe, FormReview, FormContact} {
		if !ValidForm(f) {
			t.Fatalf("ValidForm(%q) = false", f)
		}
	}
	if ValidForm("newsletter") {
		t.Fatalf("ValidForm(newsletter) = true")
	}
}
