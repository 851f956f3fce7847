package repository

import (
	"github.com/yourusername/topic-advisor-api/internal/domain/entity"
)

// TopicRepository defines persistence operations for the topic catalog.
type TopicRepository interface {
	Create(topic *entity.Topic) error
	GetByID(id string) (*entity.Topic, error)
	// List returns topics newest first. A limit <= 0 means no cap.
	List(limit int) ([]entity.Topic, error)
	// Search matches title OR description OR area, case-insensitive
	// substring semantics, newest first, capped at limit.
	Search(query string, limit int) ([]entity.Topic, error)
	// Update persists area/title/description/image for an existing topic
	// and reloads it. Returns ErrNotFound when no row matches.
	Update(topic *entity.Topic) error
	// Delete removes a topic. Returns ErrNotFound when no row matches.
	Delete(id string) error
}
