// Package services – SubscriberService and ContactService
//
// Admin-side access to the mailing list and the contact inbox. Both are
// populated only through SubmissionService; here they are listed, pruned
// and, for subscribers, exported as CSV.
package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
	"github.com/standupsite/promo-backend/internal/utils"
)

// SubscriberService lists, deletes and exports subscribers.
type SubscriberService struct {
	DB *gorm.DB
}

// NewSubscriberService constructs a SubscriberService.
func NewSubscriberService(db *gorm.DB) *SubscriberService {
	return &SubscriberService{DB: db}
}

// ListPage returns subscribers matching search (name or email), newest first.
func (s *SubscriberService) ListPage(ctx context.Context, search string, page, pageSize int) ([]domain.Subscriber, int64, error) {
	page, pageSize = utils.ClampPage(page, pageSize)
	total, err := repo.CountSubscribers(ctx, s.DB, search)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Subscriber{}, 0, nil
	}
	items, err := repo.ListSubscribersPage(ctx, s.DB, search, utils.Offset(page, pageSize), pageSize)
	return items, total, err
}

// Delete removes a subscriber.
func (s *SubscriberService) Delete(ctx context.Context, id string) error {
	if err := repo.DeleteSubscriber(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrSubscriberNotFound
		}
		return err
	}
	return nil
}

// ExportHeader is the first CSV row written by ExportCSV.
var ExportHeader = []string{"First Name", "Last Name", "Email", "Phone", "Date"}

// ExportFilename names the export file after the day it was taken.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("subscribers-%s.csv", now.UTC().Format(time.DateOnly))
}

// ExportCSV writes every subscriber to w as RFC 4180 CSV, newest first.
func (s *SubscriberService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	subs, err := repo.ListAllSubscribers(ctx, s.DB)
	if err != nil {
		return 0, err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return 0, err
	}
	for _, sub := range subs {
		row := []string{
			spreadsheetSafe(sub.FirstName),
			spreadsheetSafe(sub.LastName),
			spreadsheetSafe(sub.Email),
			spreadsheetSafe(sub.Phone),
			sub.CreatedAt.UTC().Format(time.DateOnly),
		}
		if err := cw.Write(row); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	return len(subs), cw.Error()
}

// spreadsheetSafe prefixes a quote to cells a spreadsheet would evaluate as a
// formula. Every exported value except the date comes from public input.
func spreadsheetSafe(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}

// ContactService manages contact-form messages.
type ContactService struct {
	DB *gorm.DB
}

// NewContactService constructs a ContactService.
func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

// ListPage returns contact messages newest first.
func (s *ContactService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Contact, int64, error) {
	page, pageSize = utils.ClampPage(page, pageSize)
	total, err := repo.CountContacts(ctx, s.DB, false)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Contact{}, 0, nil
	}
	items, err := repo.ListContactsPage(ctx, s.DB, utils.Offset(page, pageSize), pageSize)
	return items, total, err
}

// MarkRead flags a message as read.
func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	if err := repo.MarkContactRead(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	return nil
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := repo.DeleteContact(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	return nil
}

// Dashboard returns the admin landing-page counters.
func (s *ContactService) Dashboard(ctx context.Context) (repo.Dashboard, error) {
	return repo.DashboardCounts(ctx, s.DB)
}
