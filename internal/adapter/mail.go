package adapter

import (
	"context"
	"fmt"
	"net/http"

	"personal-assistant/internal/command"
)

// HTTPAuthorizer returns an OAuth-authenticated HTTP client.
type HTTPAuthorizer interface {
	HTTPClient(ctx context.Context) (*http.Client, error)
}

// MailerFactory builds a mail sender on top of an authenticated client.
type MailerFactory func(ctx context.Context, client *http.Client) (command.Mailer, error)

type mailAdapter struct {
	auth      HTTPAuthorizer
	newMailer MailerFactory
}

// NewMail wraps auth. A nil auth always reports Gmail as not configured.
func NewMail(auth HTTPAuthorizer, newMailer MailerFactory) command.Mail {
	return &mailAdapter{auth: auth, newMailer: newMailer}
}

func (m *mailAdapter) Acquire(ctx context.Context) command.MailSession {
	if m.auth == nil {
		return command.MailSession{Failure: MsgGmailNotConfigured}
	}

	client, err := m.auth.HTTPClient(ctx)
	if err != nil {
		return command.MailSession{Failure: fmt.Sprintf("Gmail login failed: %v", err)}
	}
	mailer, err := m.newMailer(ctx, client)
	if err != nil {
		return command.MailSession{Failure: fmt.Sprintf("Gmail login failed: %v", err)}
	}
	return command.MailSession{Mailer: mailer}
}

func (m *mailAdapter) Send(ctx context.Context, session command.MailSession, to, subject, body string) string {
	if session.Failure != "" {
		return fmt.Sprintf("Gmail error: %s", session.Failure)
	}
	if session.Mailer == nil {
		return fmt.Sprintf("Gmail error: %s", MsgGmailNotConfigured)
	}
	if err := session.Mailer.Send(ctx, to, subject, body); err != nil {
		return fmt.Sprintf("Failed to send email: %v", err)
	}
	return MsgEmailSent
}
