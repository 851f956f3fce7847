package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
)

// SubmissionRepo implements repository.SubmissionRepository.
type SubmissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo creates a new submission repository.
func NewSubmissionRepo(db *gorm.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// Create inserts a new submission.
func (r *SubmissionRepo) Create(submission *entity.Submission) error {
	return r.db.Create(submission).Error
}

// GetByID returns a submission by id.
func (r *SubmissionRepo) GetByID(id string) (*entity.Submission, error) {
	var submission entity.Submission
	err := r.db.Where("id = ?", id).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// ListByUser returns the user's submissions, newest first.
func (r *SubmissionRepo) ListByUser(userID string, limit int) ([]entity.Submission, error) {
	var submissions []entity.Submission
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&submissions).Error
	return submissions, err
}

// ListRecent returns the newest submissions across all users.
func (r *SubmissionRepo) ListRecent(limit int) ([]entity.Submission, error) {
	var submissions []entity.Submission
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&submissions).Error
	return submissions, err
}

// ClaimBySessionToken reassigns anonymous submissions to a user in a
// single statement, so a repeated claim simply affects zero rows.
func (r *SubmissionRepo) ClaimBySessionToken(userID, sessionToken string) (int64, error) {
	result := r.db.Model(&entity.Submission{}).
		Where("session_token = ?", sessionToken).
		Updates(map[string]interface{}{
			"user_id":       userID,
			"session_token": nil,
		})
	return result.RowsAffected, result.Error
}
