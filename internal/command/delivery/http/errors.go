package http

import "errors"

const (
	msgNoCommand          = "No command received"
	msgCalendarNotEnabled = "Calendar is not configured."

	defaultEventDays    = 7
	defaultEventResults = 10
	maxEventDays        = 90
	maxEventResults     = 100
)

var (
	errInvalidDays = errors.New("days must be between 0 and 90")
	errInvalidMax  = errors.New("max must be between 0 and 100")
)
