package command

import (
	"context"

	"personal-assistant/pkg/gcalendar"
)

// UseCase is the command dispatcher.
type UseCase interface {
	// Dispatch routes a raw command to exactly one intent handler. It never panics
	// and never returns an error: failures become the message text.
	Dispatch(ctx context.Context, command string) Result

	// SendEmail drafts (when needed) and sends a message through the mail adapter.
	SendEmail(ctx context.Context, input SendEmailInput) Result
}

// AI generates text.
type AI interface {
	// Respond never fails: errors become "AI error: ..." text.
	Respond(ctx context.Context, prompt string) string
	// Generate is the raw call; errors propagate.
	Generate(ctx context.Context, prompt string) (string, error)
	// DraftEmail writes an email body for context, falling back to a template.
	DraftEmail(ctx context.Context, context string) string
}

// Battery reports the host battery.
type Battery interface {
	Status(ctx context.Context) string
}

// Browser opens URLs on the host.
type Browser interface {
	Open(ctx context.Context, url string) string
}

// News summarises top headlines.
type News interface {
	TopHeadlines(ctx context.Context, country string, limit int) string
}

// Mail acquires OAuth sessions and sends through them.
type Mail interface {
	Acquire(ctx context.Context) MailSession
	Send(ctx context.Context, session MailSession, to, subject, body string) string
}

// Mailer is a live mail session.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Music maps song names to links.
type Music interface {
	Lookup(name string) (string, error)
}

// Calendar lists upcoming events.
type Calendar interface {
	Upcoming(ctx context.Context, days int, max int64) ([]gcalendar.Event, error)
}
