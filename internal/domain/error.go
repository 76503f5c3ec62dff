package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrOperationFailed    = errors.New("operation failed")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
	ErrQuotaExceeded      = errors.New("monthly proposal quota exceeded")
	ErrPaymentNotVerified = errors.New("payment not verified by provider")
)
