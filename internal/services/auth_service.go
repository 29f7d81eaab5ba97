// Package services – AuthService
//
// The site has a single administrator whose e-mail and bcrypt password hash
// come from configuration. A successful login stores an opaque session token
// with an expiry; admin requests present it as a bearer token.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/standupsite/promo-backend/internal/domain"
	"github.com/standupsite/promo-backend/internal/repo"
)

// AuthService checks admin credentials and manages session tokens.
type AuthService struct {
	DB           *gorm.DB
	Email        string
	PasswordHash []byte
	SessionTTL   time.Duration
	Now          func() time.Time
}

// NewAuthService constructs an AuthService. An empty hash disables login.
func NewAuthService(db *gorm.DB, email, passwordHash string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{
		DB:           db,
		Email:        NormalizeEmail(email),
		PasswordHash: []byte(passwordHash),
		SessionTTL:   ttl,
		Now:          func() time.Time { return time.Now().UTC() },
	}
}

// Session is what Login hands back to the client.
type Session struct {
	Token     string    `json:"token"      example:"0b5a3f0e-6c57-4b55-9b0b-3f9d0f3f2c11"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login verifies email and password and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if len(s.PasswordHash) == 0 || s.Email == "" {
		return nil, ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(NormalizeEmail(email)), []byte(s.Email)) == 1
	// Always pay for the hash comparison so a wrong e-mail is not faster.
	pwErr := bcrypt.CompareHashAndPassword(s.PasswordHash, []byte(password))
	if !emailOK || pwErr != nil {
		zerolog.Ctx(ctx).Warn().Msg("admin login failed")
		return nil, ErrInvalidCredentials
	}

	now := s.Now()
	sess := &domain.AdminSession{
		Token:     uuid.NewString(),
		Email:     s.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.SessionTTL),
	}
	if err := repo.CreateSession(ctx, s.DB, sess); err != nil {
		return nil, err
	}
	return &Session{Token: sess.Token, ExpiresAt: sess.ExpiresAt}, nil
}

// Authenticate returns the admin e-mail for a live token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	sess, err := repo.GetSession(ctx, s.DB, token, s.Now())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}
	return sess.Email, nil
}

// Logout revokes token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return repo.RevokeSession(ctx, s.DB, token)
}
