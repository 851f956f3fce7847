package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	"github.com/yourusername/topic-advisor-api/internal/domain/repository"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
	"github.com/yourusername/topic-advisor-api/pkg/auth"
)

// Identity is the resolved principal behind a bearer token.
type Identity struct {
	UserID string
	Email  string
}

// AuthService issues and resolves opaque bearer tokens and gates the admin
// surface by the configured email allow-list.
type AuthService struct {
	userRepo      repository.UserRepository
	tokenRepo     repository.AuthTokenRepository
	adminEmails   map[string]struct{}
	tokenLifetime time.Duration
}

// NewAuthService creates the auth service. adminEmails is the normalized
// allow-list from configuration; an empty list leaves the admin gate open
// to every authenticated user, which is documented operational behavior.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.AuthTokenRepository,
	adminEmails []string,
	tokenLifetime time.Duration,
) (*AuthService, error) {
	if userRepo == nil || tokenRepo == nil {
		return nil, fmt.Errorf("auth service requires user and token repositories")
	}
	if tokenLifetime <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive")
	}

	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allowed[strings.ToLower(email)] = struct{}{}
	}

	return &AuthService{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		adminEmails:   allowed,
		tokenLifetime: tokenLifetime,
	}, nil
}

// Register creates a new account and issues a token for it. A duplicate
// email is ErrConflict; the pre-check is only a fast path, the unique
// index on users.email is the authoritative guard.
func (s *AuthService) Register(email, password string, name *string) (*entity.User, string, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", apperrors.ErrConflict
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both come back as the same ErrUnauthorized so the response
// leaks nothing about which part failed.
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveToken maps a bearer token to the user behind it. Malformed
// tokens are rejected before any storage lookup.
func (s *AuthService) ResolveToken(token string) (*Identity, error) {
	if !auth.IsUUID(token) {
		return nil, apperrors.ErrUnauthorized
	}

	row, err := s.tokenRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if row.IsExpired() {
		return nil, apperrors.ErrExpiredToken
	}

	user, err := s.userRepo.GetByID(row.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	return &Identity{UserID: user.ID, Email: user.Email}, nil
}

// Logout revokes the presented token. Revoking an unknown token is a
// no-op.
func (s *AuthService) Logout(token string) error {
	if !auth.IsUUID(token) {
		return apperrors.ErrUnauthorized
	}
	return s.tokenRepo.Delete(token)
}

// IsAdmin reports whether the email belongs to the admin allow-list.
// Matching is case-insensitive; an empty allow-list admits everyone.
func (s *AuthService) IsAdmin(email string) bool {
	if len(s.adminEmails) == 0 {
		return true
	}
	_, ok := s.adminEmails[strings.ToLower(email)]
	return ok
}

// CleanupExpiredTokens deletes tokens past their expiry.
func (s *AuthService) CleanupExpiredTokens() error {
	deleted, err := s.tokenRepo.DeleteExpired()
	if err != nil {
		return err
	}
	if deleted > 0 {
		log.Printf("[AuthService] removed %d expired tokens", deleted)
	}
	return nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	token := auth.NewToken()
	row := &entity.AuthToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.tokenLifetime),
	}
	if err := s.tokenRepo.Create(row); err != nil {
		return "", err
	}
	return token, nil
}
