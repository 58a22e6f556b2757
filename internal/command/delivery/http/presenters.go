package http

import (
	"personal-assistant/internal/command"
	"personal-assistant/pkg/gcalendar"
)

// --- Request DTOs ---

type runReq struct {
	Command string `form:"command"`
}

type emailReq struct {
	To      string `form:"to"`
	Subject string `form:"subject"`
	Body    string `form:"body"`
	Context string `form:"context"`
}

func (r emailReq) toInput() command.SendEmailInput {
	return command.SendEmailInput{
		To:      r.To,
		Subject: r.Subject,
		Body:    r.Body,
		Context: r.Context,
	}
}

type listEventsReq struct {
	Days int   `form:"days"`
	Max  int64 `form:"max"`
}

func (r listEventsReq) validate() error {
	if r.Days < 0 || r.Days > maxEventDays {
		return errInvalidDays
	}
	if r.Max < 0 || r.Max > maxEventResults {
		return errInvalidMax
	}
	return nil
}

// --- Response DTOs ---

// runResp always carries url, as null when absent.
type runResp struct {
	Message string  `json:"message"`
	URL     *string `json:"url"`
}

func newRunResp(res command.Result) runResp {
	resp := runResp{Message: res.Message}
	if res.HasURL() {
		url := res.URL
		resp.URL = &url
	}
	return resp
}

type messageResp struct {
	Message string `json:"message"`
}

type listEventsResp struct {
	Events []gcalendar.Event `json:"events"`
	Count  int               `json:"count"`
}

func newListEventsResp(events []gcalendar.Event) listEventsResp {
	if events == nil {
		events = []gcalendar.Event{}
	}
	return listEventsResp{Events: events, Count: len(events)}
}
