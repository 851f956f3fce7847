package entity

import "time"

// AuthToken is an opaque bearer token bound 1:1 to a user. Tokens are
// random UUIDs; the value itself carries no claims.
type AuthToken struct {
	Token     string    `gorm:"type:uuid;primaryKey" json:"-"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the GORM table name.
func (AuthToken) TableName() string {
	return "auth_tokens"
}

// IsExpired reports whether the token has passed its expiry.
func (t *AuthToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
