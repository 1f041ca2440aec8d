package validation

import (
	"errors"
	"strings"
)

var ErrUsernameRequired = errors.New("username is required")

// ValidateUsername rejects empty and whitespace-only usernames.
// The username itself is stored verbatim and compared case-sensitively.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	return nil
}
