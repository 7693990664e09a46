package models

import "errors"

// Domain-specific errors for model parsing
var (
	// ErrInvalidDefaultStatus indicates a profile default that is neither todo nor pending
	ErrInvalidDefaultStatus = errors.New("invalid default status")

	// ErrInvalidTimestamp indicates a timestamp in none of the accepted layouts
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrIDSpaceExhausted indicates the collection already holds the largest representable id
	ErrIDSpaceExhausted = errors.New("no task ids left")
)
