package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
	"github.com/yourusername/topic-advisor-api/internal/domain/repository"
	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
)

// SavedTopicService manages per-user bookmarks.
type SavedTopicService struct {
	savedRepo repository.SavedTopicRepository
}

// NewSavedTopicService creates the saved-topic service.
func NewSavedTopicService(savedRepo repository.SavedTopicRepository) (*SavedTopicService, error) {
	if savedRepo == nil {
		return nil, fmt.Errorf("saved-topic service requires a repository")
	}
	return &SavedTopicService{savedRepo: savedRepo}, nil
}

// List returns the user's bookmarks, newest first.
func (s *SavedTopicService) List(userID string) ([]entity.SavedTopic, error) {
	return s.savedRepo.ListByUser(userID)
}

// Create stores a bookmark. The topic text is required; the label is
// optional.
func (s *SavedTopicService) Create(userID, topic string, label *string) (*entity.SavedTopic, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, apperrors.ErrValidation
	}

	saved := &entity.SavedTopic{
		ID:     uuid.NewString(),
		UserID: userID,
		Topic:  topic,
		Label:  label,
	}
	if err := s.savedRepo.Create(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// Delete removes the user's bookmark. Deleting a missing or foreign row
// is a silent no-op.
func (s *SavedTopicService) Delete(id, userID string) error {
	return s.savedRepo.DeleteOwned(id, userID)
}
