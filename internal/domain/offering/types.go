package offering

import "errors"

var (
	ErrInvalidType      = errors.New("offering type is not one of the known categories")
	ErrEmptyUserName    = errors.New("contributor name cannot be empty")
	ErrUserNameTooLong  = errors.New("contributor name exceeds maximum length")
	ErrInvalidTimestamp = errors.New("timestamp is not a valid date")
)
