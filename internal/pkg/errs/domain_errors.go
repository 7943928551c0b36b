package errs

import "errors"

// Sentinel errors shared between the command and query layers
var (
	// Recipient errors
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrDuplicateRecipient = errors.New("recipient already exists")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
