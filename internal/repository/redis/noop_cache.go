package redis

import (
	"time"

	apperrors "github.com/yourusername/topic-advisor-api/internal/pkg/errors"
)

// NoopCache is the cache used when Redis is not configured: every read
// misses and writes are discarded, so callers always fall through to the
// database.
type NoopCache struct{}

// SetJSON discards the value.
func (NoopCache) SetJSON(key string, value interface{}, expiration time.Duration) error {
	return nil
}

// GetJSON always reports a miss.
func (NoopCache) GetJSON(key string, dest interface{}) error {
	return apperrors.ErrNotFound
}

// Delete is a no-op.
func (NoopCache) Delete(key string) error {
	return nil
}
