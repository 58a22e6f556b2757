package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"
	DefaultMaxResults = 10
)

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	Location  string    `json:"location,omitempty"`
	HtmlLink  string    `json:"html_link,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	AllDay    bool      `json:"all_day"`
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
