package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// saltBytes is the width of the per-record random salt (128 bits).
const saltBytes = 16

// HashPassword derives the storable form of a plaintext password:
// "<hex-salt>$<hex-digest>" where digest = SHA-256(plaintext || hex-salt).
// The encoding is a stable external interface; existing records hashed by
// earlier deployments must keep verifying.
func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", errors.New("password is empty")
	}
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	hexSalt := hex.EncodeToString(salt)
	sum := sha256.Sum256([]byte(password + hexSalt))
	return hexSalt + "$" + hex.EncodeToString(sum[:]), nil
}

// VerifyPassword reports whether plaintext matches the stored secret.
// Malformed stored values are never a match; this function does not fail.
func VerifyPassword(password, stored string) bool {
	salt, digest, ok := strings.Cut(stored, "$")
	if !ok || salt == "" || digest == "" || strings.ContainsRune(digest, '$') {
		return false
	}
	sum := sha256.Sum256([]byte(password + salt))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) == 1
}
