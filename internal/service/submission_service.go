package service

import (
	"fmt"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	"github.com/yourusername/topic-advisor-api/internal/domain/repository"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
	"github.com/yourusername/topic-advisor-api/internal/service/recommender"
)

// Result set caps.
const (
	maxUserSubmissions = 50
	exportSubmissions  = 500
)

// SubmissionService persists quiz attempts and their computed
// recommendations and handles the anonymous-session claim handoff.
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
}

// NewSubmissionService creates the submission service.
func NewSubmissionService(submissionRepo repository.SubmissionRepository) (*SubmissionService, error) {
	if submissionRepo == nil {
		return nil, fmt.Errorf("submission service requires a submission repository")
	}
	return &SubmissionService{submissionRepo: submissionRepo}, nil
}

// Create scores the answers and stores the attempt. The owner is the
// authenticated user when userID is set, otherwise the client-generated
// session token; one of the two is required.
func (s *SubmissionService) Create(userID, sessionToken string, answers map[string]int, durationMs int64) (*entity.Submission, error) {
	if userID == "" && sessionToken == "" {
		return nil, apperrors.ErrValidation
	}

	rec := recommender.Compute(answers)

	var submission *entity.Submission
	if userID != "" {
		submission = entity.NewUserSubmission(userID, entity.IntMap(answers), durationMs)
	} else {
		submission = entity.NewAnonymousSubmission(sessionToken, entity.IntMap(answers), durationMs)
	}
	submission.Scores = entity.IntMap(rec.Scores)
	submission.TopAreas = entity.StringArray(rec.TopAreas)
	submission.ThesisType = rec.ThesisType

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// Claim reassigns every submission carrying the session token to the
// user. Idempotent: a repeated or unknown token claims zero rows.
func (s *SubmissionService) Claim(userID, sessionToken string) (int64, error) {
	return s.submissionRepo.ClaimBySessionToken(userID, sessionToken)
}

// ListByUser returns the caller's submissions, newest first, capped.
func (s *SubmissionService) ListByUser(userID string) ([]entity.Submission, error) {
	return s.submissionRepo.ListByUser(userID, maxUserSubmissions)
}

// GetVisible fetches one submission, applying the visibility rule: a
// submission owned by a different authenticated user is reported as
// absent, not forbidden.
func (s *SubmissionService) GetVisible(id, callerID string) (*entity.Submission, error) {
	submission, err := s.submissionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !submission.VisibleTo(callerID) {
		return nil, apperrors.ErrNotFound
	}
	return submission, nil
}

// ListRecent returns the newest submissions across all users for the
// admin export.
func (s *SubmissionService) ListRecent() ([]entity.Submission, error) {
	return s.submissionRepo.ListRecent(exportSubmissions)
}

// QuestionCount exposes the questionnaire size for response payloads.
func (s *SubmissionService) QuestionCount() int {
	return len(recommender.Questions)
}
