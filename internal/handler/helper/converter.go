package helper

import (
	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	"github.com/yourusername/topic-advisor-api/internal/handler/dto"
)

// ToUserDTO converts a user entity to its API view.
func ToUserDTO(user *entity.User) dto.UserDTO {
	return dto.UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

// ToTopicDTO converts a topic entity to its API view.
func ToTopicDTO(topic *entity.Topic) dto.TopicDTO {
	return dto.TopicDTO{
		ID:          topic.ID,
		Area:        topic.Area,
		Title:       topic.Title,
		Description: topic.Description,
		ImageURL:    topic.ImageURL,
		CreatedAt:   topic.CreatedAt,
		UpdatedAt:   topic.UpdatedAt,
	}
}

// ToTopicDTOs converts a topic slice. Always returns a non-nil slice so
// empty results encode as [].
func ToTopicDTOs(topics []entity.Topic) []dto.TopicDTO {
	out := make([]dto.TopicDTO, len(topics))
	for i := range topics {
		out[i] = ToTopicDTO(&topics[i])
	}
	return out
}

// ToSavedTopicDTO converts a bookmark entity to its API view.
func ToSavedTopicDTO(saved *entity.SavedTopic) dto.SavedTopicDTO {
	return dto.SavedTopicDTO{
		ID:        saved.ID,
		Topic:     saved.Topic,
		Label:     saved.Label,
		CreatedAt: saved.CreatedAt,
	}
}

// ToSavedTopicDTOs converts a bookmark slice.
func ToSavedTopicDTOs(saved []entity.SavedTopic) []dto.SavedTopicDTO {
	out := make([]dto.SavedTopicDTO, len(saved))
	for i := range saved {
		out[i] = ToSavedTopicDTO(&saved[i])
	}
	return out
}

// ToSubmissionSummaryDTO converts a submission to a history row.
func ToSubmissionSummaryDTO(submission *entity.Submission) dto.SubmissionSummaryDTO {
	return dto.SubmissionSummaryDTO{
		ID:         submission.ID,
		ThesisType: submission.ThesisType,
		Scores:     submission.Scores,
		TopAreas:   submission.TopAreas,
		DurationMs: submission.DurationMs,
		CreatedAt:  submission.CreatedAt,
	}
}

// ToSubmissionSummaryDTOs converts a submission slice.
func ToSubmissionSummaryDTOs(submissions []entity.Submission) []dto.SubmissionSummaryDTO {
	out := make([]dto.SubmissionSummaryDTO, len(submissions))
	for i := range submissions {
		out[i] = ToSubmissionSummaryDTO(&submissions[i])
	}
	return out
}

// ToSubmissionDetailDTO converts a submission to its point-lookup view.
func ToSubmissionDetailDTO(submission *entity.Submission, total int) dto.SubmissionDetailDTO {
	return dto.SubmissionDetailDTO{
		ID:         submission.ID,
		ThesisType: submission.ThesisType,
		Scores:     submission.Scores,
		TopAreas:   submission.TopAreas,
		Answered:   len(submission.Answers),
		Total:      total,
		DurationMs: submission.DurationMs,
		CreatedAt:  submission.CreatedAt,
	}
}
