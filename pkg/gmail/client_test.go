package gmail_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"personal-assistant/pkg/gmail"
)

func TestClient_Send(t *testing.T) {
	var raw string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/users/me/messages/send") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body struct {
			Raw string `json:"raw"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body.Raw == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		raw = body.Raw
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg-1","threadId":"t-1"}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	client, err := gmail.NewClientFromHTTP(ctx, ts.Client(), option.WithEndpoint(ts.URL+"/"))
	require.NoError(t, err)

	require.NoError(t, client.Send(ctx, "student@example.com", "Selection", "Congratulations!"))

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	msg := string(decoded)
	assert.Contains(t, msg, "To: student@example.com\r\n")
	assert.Contains(t, msg, "Subject: Selection\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nCongratulations!"))
}

func TestClient_SendError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"insufficient scope"}}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	client, err := gmail.NewClientFromHTTP(ctx, ts.Client(), option.WithEndpoint(ts.URL+"/"))
	require.NoError(t, err)

	err = client.Send(ctx, "a@example.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient scope")
}

func TestClient_SendRejectsHeaderInjection(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	client, err := gmail.NewClientFromHTTP(ctx, ts.Client(), option.WithEndpoint(ts.URL+"/"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		to      string
		subject string
	}{
		{"bcc in subject", "a@example.com", "Hi\r\nBcc: victim@evil.test"},
		{"bare newline in subject", "a@example.com", "Hi\nBcc: victim@evil.test"},
		{"bcc in recipient", "a@example.com\r\nBcc: victim@evil.test", "Hi"},
		{"recipient list", "a@example.com, victim@evil.test", "Hi"},
		{"not an address", "nobody", "Hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Send(ctx, tt.to, tt.subject, "body")
			require.Error(t, err)
			assert.True(t, errors.Is(err, gmail.ErrInvalidHeader))
		})
	}
	assert.Equal(t, 0, calls)
}

func TestClient_SendEncodesSubject(t *testing.T) {
	var raw string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Raw string `json:"raw"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		raw = body.Raw
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	client, err := gmail.NewClientFromHTTP(ctx, ts.Client(), option.WithEndpoint(ts.URL+"/"))
	require.NoError(t, err)

	require.NoError(t, client.Send(ctx, "Bob <bob@example.com>", "Félicitations", "b"))

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	msg := string(decoded)
	assert.Contains(t, msg, "To: \"Bob\" <bob@example.com>\r\n")
	assert.Contains(t, msg, "Subject: =?utf-8?q?F=C3=A9licitations?=\r\n")
}
