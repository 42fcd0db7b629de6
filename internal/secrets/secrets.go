package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	service          = "mooncyc"
	anthropicKeyUser = "anthropic-api-key"
)

var (
	// ErrNotFound is returned when no API key is stored in the keyring.
	ErrNotFound = errors.New("api key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the Anthropic API key from the OS keyring.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(service, anthropicKeyUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAPIKey stores the Anthropic API key in the OS keyring.
func SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("api key cannot be empty")
	}
	if err := keyring.Set(service, anthropicKeyUser, key); err != nil {
		return fmt.Errorf("storing api key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the Anthropic API key from the OS keyring.
func DeleteAPIKey() error {
	if err := keyring.Delete(service, anthropicKeyUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting api key from keyring: %w", err)
	}
	return nil
}

// ResolveAPIKey returns envKey when set and falls back to the keyring.
// A missing or unreachable keyring yields "".
func ResolveAPIKey(envKey string) string {
	if k := strings.TrimSpace(envKey); k != "" {
		return k
	}
	key, err := GetAPIKey()
	if err != nil {
		return ""
	}
	return key
}

// Mask shortens a key for display, keeping only its last four characters.
func Mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
