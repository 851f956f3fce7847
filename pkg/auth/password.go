package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Password hashing parameters. The stored format is "hex(salt):hex(key)"
// with a random 16-byte salt and a 64-byte scrypt-derived key, so hashes
// remain verifiable across reimplementations sharing the same store.
const (
	saltLen = 16
	keyLen  = 64
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a salted scrypt hash of the given password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the candidate hash with the stored salt and
// compares it in constant time. A malformed stored value never matches.
func VerifyPassword(password, stored string) bool {
	saltHex, keyHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) == 0 {
		return false
	}

	candidate, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(key))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, candidate) == 1
}
