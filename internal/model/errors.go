package model

import "errors"

// Common errors used across the application
var (
	// Lookup errors
	ErrInvalidPlayerID   = errors.New("invalid player id")
	ErrLookupUnavailable = errors.New("ban status lookup unavailable")
	ErrMalformedStatus   = errors.New("status payload is missing required fields")

	// Formatting errors
	ErrUnknownLanguage = errors.New("unknown language code")

	// Command gating errors
	ErrPermissionDenied  = errors.New("administrator permission required")
	ErrChannelRestricted = errors.New("command not allowed in this channel")
)
