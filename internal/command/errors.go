package command

import "errors"

// Domain-specific errors for the command package.
var (
	ErrMissingSongName     = errors.New("play: missing song name")
	ErrAIUnavailable       = errors.New("AI backend not available")
	ErrCalendarUnavailable = errors.New("calendar is not configured")
)
