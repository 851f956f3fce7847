package repository

import (
	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
)

// SubmissionRepository defines persistence operations for quiz submissions.
type SubmissionRepository interface {
	Create(submission *entity.Submission) error
	GetByID(id string) (*entity.Submission, error)
	// ListByUser returns the user's submissions, newest first, capped at limit.
	ListByUser(userID string, limit int) ([]entity.Submission, error)
	// ListRecent returns the newest submissions across all users, capped at
	// limit. Used for the admin export.
	ListRecent(limit int) ([]entity.Submission, error)
	// ClaimBySessionToken reassigns every submission carrying the session
	// token to the given user and clears the token. Returns the number of
	// rows affected; zero is not an error.
	ClaimBySessionToken(userID, sessionToken string) (int64, error)
}
