package recipient

import "errors"

var (
	ErrEmptyName   = errors.New("recipient name cannot be empty")
	ErrNameTooLong = errors.New("recipient name exceeds maximum length")
)
