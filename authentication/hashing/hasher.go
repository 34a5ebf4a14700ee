package hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// saltBytes is the amount of randomness drawn for each new salt.
const saltBytes = 16

// Hasher computes salted password hashes. The pepper is a process-wide
// secret mixed into every hash; it is never stored next to the user row.
type Hasher struct {
	pepper string
}

func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

// Hash returns the hex SHA-256 digest of password || salt || pepper.
// Deterministic: the same three inputs always produce the same digest.
func (h *Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt + h.pepper))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the hash for the submitted password and compares it to
// the stored one in constant time.
func (h *Hasher) Verify(password, salt, storedHash string) bool {
	computed := h.Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// GenerateSalt produces a fresh random hex salt for a new registration.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
