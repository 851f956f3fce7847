package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
)

// AuthTokenRepo implements repository.AuthTokenRepository.
type AuthTokenRepo struct {
	db *gorm.DB
}

// NewAuthTokenRepo creates a new auth token repository.
func NewAuthTokenRepo(db *gorm.DB) *AuthTokenRepo {
	return &AuthTokenRepo{db: db}
}

// Create inserts a new token row.
func (r *AuthTokenRepo) Create(token *entity.AuthToken) error {
	return r.db.Create(token).Error
}

// GetByToken returns the token row for an opaque token value.
func (r *AuthTokenRepo) GetByToken(token string) (*entity.AuthToken, error) {
	var row entity.AuthToken
	err := r.db.Where("token = ?", token).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Delete removes a token row. Deleting a missing token is a no-op.
func (r *AuthTokenRepo) Delete(token string) error {
	return r.db.Where("token = ?", token).Delete(&entity.AuthToken{}).Error
}

// DeleteExpired removes all tokens past their expiry.
func (r *AuthTokenRepo) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&entity.AuthToken{})
	return result.RowsAffected, result.Error
}
