package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// MinLength is the minimum password length the policy allows.
	MinLength = 16
	// DefaultLength is used when callers have no length requirement.
	DefaultLength = 24

	letters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits   = "0123456789"
	specials = "!@#$%^&*-_=+"
)

// GeneratePassword returns a fresh random password of the given length.
// Every password contains at least one character from the special set.
// An error is only returned when the length is below policy or the system
// entropy source fails; the latter is fatal and not retryable.
func GeneratePassword(length int) (string, error) {
	if length < MinLength {
		return "", fmt.Errorf("password length %d below policy minimum %d", length, MinLength)
	}

	charset := letters + digits + specials
	buf := make([]byte, length)
	for i := range buf {
		c, err := randomIndex(len(charset))
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		buf[i] = charset[c]
	}

	// Force a special character if the draw happened to produce none.
	if !strings.ContainsAny(string(buf), specials) {
		pos, err := randomIndex(length)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		c, err := randomIndex(len(specials))
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		buf[pos] = specials[c]
	}

	return string(buf), nil
}

// MeetsPolicy reports whether a value satisfies the credential strength
// policy.
func MeetsPolicy(value string) bool {
	return len(value) >= MinLength && strings.ContainsAny(value, specials)
}

func randomIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
