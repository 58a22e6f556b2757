package gmail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/mail"
	"strings"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// ErrInvalidHeader is returned when a recipient or subject cannot be written as a header.
var ErrInvalidHeader = errors.New("gmail: invalid message header")

// Client sends mail through the Gmail API.
type Client struct {
	service *gmail.Service
}

// NewClientFromHTTP creates a Gmail client from an authenticated HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Send delivers a plain-text message from the authenticated account.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	raw, err := encodeMessage(to, subject, body)
	if err != nil {
		return err
	}
	msg := &gmail.Message{Raw: raw}
	if _, err := c.service.Users.Messages.Send(userID, msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// encodeMessage builds the raw RFC 2822 message. to must be a single address and
// subject must not contain line breaks; the subject is Q-encoded when needed.
func encodeMessage(to, subject, body string) (string, error) {
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return "", fmt.Errorf("%w: line break in recipient or subject", ErrInvalidHeader)
	}
	addr, err := mail.ParseAddress(to)
	if err != nil {
		return "", fmt.Errorf("%w: recipient %q: %v", ErrInvalidHeader, to, err)
	}
	recipient := addr.Address
	if addr.Name != "" {
		recipient = addr.String()
	}

	var b strings.Builder
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	fmt.Fprintf(&b, "To: %s\r\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("\r\n")
	b.WriteString(body)
	return base64.URLEncoding.EncodeToString([]byte(b.String())), nil
}
