package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSessionNotFound = errors.New("session not found")
)
