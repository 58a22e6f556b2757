package newsapi

import (
	"errors"
	"fmt"
)

var ErrMissingAPIKey = errors.New("newsapi: API key not configured")

// StatusError is returned when NewsAPI answers with a non-200 status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("newsapi: unexpected status %d", e.StatusCode)
}
