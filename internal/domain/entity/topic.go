package entity

import "time"

// Topic is a catalog entry suggested for a thesis, classified under one of
// the fixed area codes. Publicly readable, writable by admins only.
type Topic struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Area        string    `gorm:"size:20;not null;index" json:"area"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	ImageURL    *string   `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the GORM table name.
func (Topic) TableName() string {
	return "topics"
}
