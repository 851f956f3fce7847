package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
)

// SavedTopicRepo implements repository.SavedTopicRepository.
type SavedTopicRepo struct {
	db *gorm.DB
}

// NewSavedTopicRepo creates a new saved-topic repository.
func NewSavedTopicRepo(db *gorm.DB) *SavedTopicRepo {
	return &SavedTopicRepo{db: db}
}

// Create inserts a new bookmark.
func (r *SavedTopicRepo) Create(saved *entity.SavedTopic) error {
	return r.db.Create(saved).Error
}

// ListByUser returns the user's bookmarks, newest first.
func (r *SavedTopicRepo) ListByUser(userID string) ([]entity.SavedTopic, error) {
	var saved []entity.SavedTopic
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

// DeleteOwned removes a bookmark only when it belongs to the user.
// Ownership is part of the WHERE clause, so a foreign or missing row
// simply affects zero rows.
func (r *SavedTopicRepo) DeleteOwned(id, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.SavedTopic{}).Error
}
