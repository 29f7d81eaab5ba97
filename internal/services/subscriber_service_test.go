package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
)

func TestSubscriberService_ExportCSV(t *testing.T) {
	db := newSvcDB(t)
	s := NewSubscriberService(db)
	ctx := context.Background()

	day := time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	for i, sub := range []domain.Subscriber{
		{FirstName: "Ana", LastName: "Lee", Email: "ana@example.com", Phone: "5551234567", CreatedAt: day},
		{FirstName: `Jo "JJ"`, LastName: "Smith, Jr.", Email: "jo@example.com", Phone: "+1 555 000 1111", CreatedAt: day.Add(time.Hour)},
		{FirstName: `=HYPERLINK("http://evil.test","x")`, LastName: "@SUM(A1:A9)", Email: "-2+3@example.com", Phone: "5550001111", CreatedAt: day.Add(2 * time.Hour)},
	} {
		sub := sub
		if err := repo.CreateSubscriber(ctx, db, &sub); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	var buf bytes.Buffer
	n, err := s.ExportCSV(ctx, &buf)
	if err != nil || n != 3 {
		t.Fatalf("ExportCSV: n=%d err=%v", n, err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows=%d; want header + 3", len(rows))
	}
	for i, h := range ExportHeader {
		if rows[0][i] != h {
			t.Fatalf("header[%d]=%q; want %q", i, rows[0][i], h)
		}
	}
	// Newest first. Formula-looking cells are neutralized with a leading quote.
	wantFormula := []string{`'=HYPERLINK("http://evil.test","x")`, "'@SUM(A1:A9)", "'-2+3@example.com", "5550001111", "2026-03-09"}
	for i, want := range wantFormula {
		if rows[1][i] != want {
			t.Fatalf("formula row[%d]=%q; want %q", i, rows[1][i], want)
		}
	}
	// Quoting survives the round trip; a leading "+" in a phone is escaped too.
	if rows[2][0] != `Jo "JJ"` || rows[2][1] != "Smith, Jr." || rows[2][3] != "'+1 555 000 1111" {
		t.Fatalf("escaped row mismatch: %q", rows[2])
	}
	if rows[3][0] != "Ana" || rows[3][4] != "2026-03-09" {
		t.Fatalf("plain row mismatch: %q", rows[3])
	}
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename(time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC))
	if got != "subscribers-2026-10-15.csv" {
		t.Fatalf("ExportFilename = %q", got)
	}
}

func TestSubscriberService_ListAndDelete(t *testing.T) {
	db := newSvcDB(t)
	s := NewSubscriberService(db)
	ctx := context.Background()
	for _, e := range []string{"a@example.com", "b@example.com", "carol@other.example"} {
		if err := repo.CreateSubscriber(ctx, db, &domain.Subscriber{FirstName: "F", LastName: "L", Email: e, Phone: "5551234567"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	items, total, err := s.ListPage(ctx, "example.com", 1, 2)
	if err != nil || total != 2 || len(items) != 2 {
		t.Fatalf("search: err=%v total=%d len=%d", err, total, len(items))
	}
	items, total, _ = s.ListPage(ctx, "", 0, 0)
	if total != 3 || len(items) != 3 {
		t.Fatalf("all: total=%d len=%d", total, len(items))
	}

	if err := s.Delete(ctx, items[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, items[0].ID); !errors.Is(err, ErrSubscriberNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestContactService_Flow(t *testing.T) {
	db := newSvcDB(t)
	s := NewContactService(db)
	ctx := context.Background()
	m := &domain.Contact{Name: "Booker", Email: "b@club.example", Message: "Are you free on the 14th?"}
	if err := repo.CreateContact(ctx, db, m); err != nil {
		t.Fatalf("seed: %v", err)
	}

	d, err := s.Dashboard(ctx)
	if err != nil || d.UnreadContacts != 1 {
		t.Fatalf("dashboard before: %+v %v", d, err)
	}
	if err := s.MarkRead(ctx, m.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if d, _ = s.Dashboard(ctx); d.UnreadContacts != 0 {
		t.Fatalf("dashboard after: %+v", d)
	}
	items, total, err := s.ListPage(ctx, 1, 10)
	if err != nil || total != 1 || !items[0].IsRead {
		t.Fatalf("ListPage: %v %d %+v", err, total, items)
	}
	if err := s.MarkRead(ctx, "missing"); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("MarkRead missing: %v", err)
	}
	if err := s.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, m.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}
