package repository

import (
	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
)

// SavedTopicRepository defines persistence operations for per-user
// bookmarks.
type SavedTopicRepository interface {
	Create(saved *entity.SavedTopic) error
	ListByUser(userID string) ([]entity.SavedTopic, error)
	// DeleteOwned removes a bookmark only when it belongs to the given
	// user. Deleting a missing or foreign row is a no-op.
	DeleteOwned(id, userID string) error
}
