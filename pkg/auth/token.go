package auth

import "github.com/google/uuid"

// NewToken generates a new opaque bearer token.
func NewToken() string {
	return uuid.NewString()
}

// IsUUID reports whether value is a canonical hyphenated UUID (versions
// 1-5, RFC 4122 variant). Tokens and session ids must pass this check
// before any storage lookup is attempted, so malformed input is rejected
// cheaply.
func IsUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	u, err := uuid.Parse(value)
	if err != nil {
		return false
	}
	if v := u.Version(); v < 1 || v > 5 {
		return false
	}
	return u.Variant() == uuid.RFC4122
}
