package dto

import "time"

// TopicRequest is the admin create/update payload.
type TopicRequest struct {
	Area        string  `json:"area" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// TopicDTO is the catalog entry as served over the API.
type TopicDTO struct {
	ID          string    `json:"id"`
	Area        string    `json:"area"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
