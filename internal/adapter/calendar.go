package adapter

import (
	"context"
	"net/http"
	"time"

	"personal-assistant/internal/command"
	"personal-assistant/pkg/gcalendar"
)

// EventLister lists calendar events over an authenticated client.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// EventListerFactory builds an EventLister on top of an authenticated client.
type EventListerFactory func(ctx context.Context, client *http.Client) (EventLister, error)

type calendarAdapter struct {
	auth       HTTPAuthorizer
	newLister  EventListerFactory
	calendarID string
	now        func() time.Time
}

// NewCalendar wraps auth. A nil auth always fails with command.ErrCalendarUnavailable.
func NewCalendar(auth HTTPAuthorizer, newLister EventListerFactory, calendarID string) command.Calendar {
	return &calendarAdapter{
		auth:       auth,
		newLister:  newLister,
		calendarID: calendarID,
		now:        time.Now,
	}
}

func (c *calendarAdapter) Upcoming(ctx context.Context, days int, max int64) ([]gcalendar.Event, error) {
	if c.auth == nil {
		return nil, command.ErrCalendarUnavailable
	}

	client, err := c.auth.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}
	lister, err := c.newLister(ctx, client)
	if err != nil {
		return nil, err
	}

	now := c.now()
	return lister.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: c.calendarID,
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, days),
		MaxResults: max,
	})
}
