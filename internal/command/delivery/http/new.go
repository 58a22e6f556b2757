package http

import (
	"embed"
	"html/template"

	"personal-assistant/internal/command"
	"personal-assistant/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type handler struct {
	l        log.Logger
	uc       command.UseCase
	calendar command.Calendar
}

// New creates a new HTTP handler for the command domain.
func New(l log.Logger, uc command.UseCase, calendar command.Calendar) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		calendar: calendar,
	}
}
