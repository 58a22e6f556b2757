package gmail

import (
	"context"
	"io"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
)

const (
	DefaultCredentialsPath = "credentials.json"
	DefaultTokenPath       = "token.json"
	DefaultRedirectPort    = 8080

	defaultCallbackTimeout = 5 * time.Minute
	userID                 = "me"
)

// Scopes requested by the assistant. Calendar read access shares the same token.
var Scopes = []string{
	gmail.GmailReadonlyScope,
	gmail.GmailSendScope,
	calendar.CalendarReadonlyScope,
}

// AuthConfig configures the OAuth session.
type AuthConfig struct {
	CredentialsPath string
	TokenPath       string
	// RedirectPort is the loopback port for interactive authorization. 0 picks a free port.
	RedirectPort int
	Scopes       []string
	// OpenBrowser is called with the consent URL. Nil only prints it.
	OpenBrowser     func(ctx context.Context, url string) error
	Prompt          io.Writer
	CallbackTimeout time.Duration
	// HTTPClient carries token requests and API calls, e.g. through a proxy.
	HTTPClient *http.Client
}
