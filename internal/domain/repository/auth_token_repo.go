package repository

import (
	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
)

// AuthTokenRepository defines persistence operations for opaque bearer
// tokens.
type AuthTokenRepository interface {
	Create(token *entity.AuthToken) error
	GetByToken(token string) (*entity.AuthToken, error)
	Delete(token string) error
	// DeleteExpired removes all tokens past their expiry and returns the
	// number of rows deleted.
	DeleteExpired() (int64, error)
}
