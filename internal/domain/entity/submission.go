package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a single quiz attempt. Exactly one of UserID and
// SessionToken is set at creation; claiming moves ownership to a user and
// clears the session token. Rows are otherwise immutable.
type Submission struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       *string     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	SessionToken *string     `gorm:"type:uuid;index" json:"-"`
	Answers      IntMap      `gorm:"type:jsonb;not null" json:"answers"`
	Scores       IntMap      `gorm:"type:jsonb;not null" json:"scores"`
	TopAreas     StringArray `gorm:"type:jsonb;not null" json:"top_areas"`
	ThesisType   string      `gorm:"size:50;not null" json:"thesis_type"`
	DurationMs   int64       `gorm:"not null;default:0" json:"duration_ms"`
	CreatedAt    time.Time   `json:"created_at"`
}

// TableName sets the GORM table name.
func (Submission) TableName() string {
	return "quiz_submissions"
}

// NewUserSubmission builds a submission owned by an authenticated user.
// All submission construction goes through NewUserSubmission or
// NewAnonymousSubmission so that no code path can set both owner fields.
func NewUserSubmission(userID string, answers IntMap, durationMs int64) *Submission {
	return &Submission{
		ID:         uuid.NewString(),
		UserID:     &userID,
		Answers:    answers,
		DurationMs: durationMs,
	}
}

// NewAnonymousSubmission builds a submission tagged with a client-generated
// session token, to be claimed after the user authenticates.
func NewAnonymousSubmission(sessionToken string, answers IntMap, durationMs int64) *Submission {
	return &Submission{
		ID:           uuid.NewString(),
		SessionToken: &sessionToken,
		Answers:      answers,
		DurationMs:   durationMs,
	}
}

// VisibleTo reports whether the submission may be shown to the caller.
// Only a submission owned by a different authenticated user is hidden;
// anonymous and unclaimed submissions stay readable by id.
func (s *Submission) VisibleTo(callerID string) bool {
	if s.UserID == nil || callerID == "" {
		return true
	}
	return *s.UserID == callerID
}
