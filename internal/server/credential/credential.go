// Package credential generates and checks the secret keys that gate first
// access to a purchased memory.
package credential

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

const (
	// Length of every issued key.
	Length = 16
	// Validity of an issued key.
	Validity = 30 * 24 * time.Hour
	// Alphabet omits look-alike characters (0/O, 1/I).
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var pattern = regexp.MustCompile(`^[A-Z0-9]{16}$`)

// Generate returns a new random key drawn from Alphabet.
func Generate() (string, error) {
	size := big.NewInt(int64(len(Alphabet)))
	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("generate credential: %w", err)
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}

// WellFormed reports whether key is 16 uppercase alphanumerics.
func WellFormed(key string) bool {
	return pattern.MatchString(key)
}

// ExpiresAt is the deadline of a key issued at issuedAt.
func ExpiresAt(issuedAt time.Time) time.Time {
	return issuedAt.Add(Validity)
}
