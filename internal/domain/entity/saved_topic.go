package entity

import "time"

// SavedTopic is a per-user bookmark. The topic is stored as copied text,
// not a catalog reference: a bookmark must survive later edits or removal
// of the catalog entry it came from.
type SavedTopic struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic     string    `gorm:"size:500;not null" json:"topic"`
	Label     *string   `gorm:"size:255" json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the GORM table name.
func (SavedTopic) TableName() string {
	return "saved_topics"
}
