package dto

import "time"

// SaveTopicRequest is the bookmark payload. Topic is the copied title
// text, not a catalog id.
type SaveTopicRequest struct {
	Topic string  `json:"topic" binding:"required"`
	Label *string `json:"label"`
}

// SavedTopicDTO is one bookmark row.
type SavedTopicDTO struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Label     *string   `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}
