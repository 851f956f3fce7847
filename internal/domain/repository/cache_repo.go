package repository

import (
	"time"
)

// CacheRepository defines the read-through cache used in front of the
// public topic catalog. Implementations must return ErrNotFound on a miss.
type CacheRepository interface {
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
	Delete(key string) error
}
