package dto

import "time"

// CreateSubmissionRequest is the quiz submit payload. Answers may cover
// any subset of the questionnaire.
type CreateSubmissionRequest struct {
	Answers    map[string]int `json:"answers"`
	DurationMs int64          `json:"durationMs"`
}

// SubmissionCreatedResponse is returned from submission creation: the
// recommendation plus the persisted id.
type SubmissionCreatedResponse struct {
	ID         string         `json:"id"`
	ThesisType string         `json:"thesisType"`
	Scores     map[string]int `json:"scores"`
	TopAreas   []string       `json:"topAreas"`
	Answered   int            `json:"answered"`
	Total      int            `json:"total"`
	DurationMs int64          `json:"durationMs"`
}

// SubmissionSummaryDTO is one row of the caller's submission history.
type SubmissionSummaryDTO struct {
	ID         string         `json:"id"`
	ThesisType string         `json:"thesisType"`
	Scores     map[string]int `json:"scores"`
	TopAreas   []string       `json:"topAreas"`
	DurationMs int64          `json:"durationMs"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// SubmissionDetailDTO is the point-lookup view of one submission.
type SubmissionDetailDTO struct {
	ID         string         `json:"id"`
	ThesisType string         `json:"thesisType"`
	Scores     map[string]int `json:"scores"`
	TopAreas   []string       `json:"topAreas"`
	Answered   int            `json:"answered"`
	Total      int            `json:"total"`
	DurationMs int64          `json:"durationMs"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ClaimResponse reports how many anonymous submissions were reassigned.
type ClaimResponse struct {
	OK      bool  `json:"ok"`
	Claimed int64 `json:"claimed"`
}
