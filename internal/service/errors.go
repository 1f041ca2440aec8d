package service

import (
	"errors"

	"github.com/templui/fittrack/internal/validation"
)

// Failures callers are expected to handle. Test with errors.Is.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrNotOwner           = errors.New("activity belongs to another user")
	ErrInvalidLevel       = errors.New("invalid fitness level")

	ErrUsernameRequired = validation.ErrUsernameRequired
	ErrNegativeValue    = validation.ErrNegativeValue
	ErrNotFinite        = validation.ErrNotFinite
)
