package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTokenIsUUID(t *testing.T) {
	token := NewToken()
	assert.Len(t, token, 36)
	assert.True(t, IsUUID(token))
}

func TestNewTokenUnique(t *testing.T) {
	assert.NotEqual(t, NewToken(), NewToken())
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"canonical v4", "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5a6b", true},
		{"uppercase hex", "3B8E3F9A-4C1D-4F2E-9A6B-1C2D3E4F5A6B", true},
		{"empty", "", false},
		{"too short", "3b8e3f9a-4c1d-4f2e-9a6b", false},
		{"no hyphens", "3b8e3f9a4c1d4f2e9a6b1c2d3e4f5a6b", false},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", false},
		{"bad version", "3b8e3f9a-4c1d-0f2e-9a6b-1c2d3e4f5a6b", false},
		{"bad variant", "3b8e3f9a-4c1d-4f2e-1a6b-1c2d3e4f5a6b", false},
		{"non-hex", "3b8e3f9a-4c1d-4f2e-9a6b-1c2d3e4f5zzz", false},
		{"jwt shaped", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUUID(tt.value))
		})
	}
}
