package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
	"github.com/yourusername/topic-advisor-api/internal/service"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextToken  = "auth_token"
)

// TokenResolver resolves bearer tokens and answers admin checks. Satisfied
// by service.AuthService.
type TokenResolver interface {
	ResolveToken(token string) (*service.Identity, error)
	IsAdmin(email string) bool
}

// AuthMiddleware authenticates requests carrying an opaque bearer token.
type AuthMiddleware struct {
	resolver TokenResolver
}

// NewAuthMiddleware creates the auth middleware.
func NewAuthMiddleware(resolver TokenResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireAuth rejects requests without a valid bearer token and stores
// the resolved identity in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		identity, err := m.resolver.ResolveToken(token)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthorized) && !errors.Is(err, apperrors.ErrExpiredToken) {
				log.Printf("[AuthMiddleware] token resolution failed: %v", err)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextEmail, identity.Email)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when one is presented but never
// rejects the request. Anonymous submission creation and the public
// point-lookup route run behind it.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if identity, err := m.resolver.ResolveToken(token); err == nil {
				c.Set(ContextUserID, identity.UserID)
				c.Set(ContextEmail, identity.Email)
			}
		}
		c.Next()
	}
}

// AdminOnly gates admin routes by the configured email allow-list. Must
// run after RequireAuth.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(ContextEmail)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if !m.resolver.IsAdmin(email.(string)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin rights required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user id from the context, or "" for
// anonymous requests.
func UserID(c *gin.Context) string {
	if id, exists := c.Get(ContextUserID); exists {
		return id.(string)
	}
	return ""
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
