package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/internal/command"
	"personal-assistant/internal/router"
	"personal-assistant/internal/test"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) Dispatch(ctx context.Context, cmd string) command.Result {
	return command.Result{Message: "ok: " + cmd}
}

func (stubUseCase) SendEmail(ctx context.Context, input command.SendEmailInput) command.Result {
	return command.Result{Message: command.MsgRecipientRequired}
}

type stubCalendar struct{}

func (stubCalendar) Upcoming(ctx context.Context, days int, max int64) ([]gcalendar.Event, error) {
	return nil, command.ErrCalendarUnavailable
}

func newServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:           5000,
		Mode:           "test",
		Environment:    "test",
		CommandUseCase: stubUseCase{},
		Calendar:       stubCalendar{},
		TestHandler:    test.New(l, router.New(l)),
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 5000})
	assert.Error(t, err)

	_, err = New(nil, Config{Mode: "test", Port: 5000, CommandUseCase: stubUseCase{}, Calendar: stubCalendar{}})
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	h := newServer(t).Handler()

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	for _, path := range []string{"/health", "/ready", "/live", "/metrics", "/"} {
		assert.Equal(t, http.StatusOK, get(path).Code, path)
	}
	assert.Equal(t, http.StatusServiceUnavailable, get("/api/v1/calendar/events").Code)
	assert.Equal(t, http.StatusNotFound, get("/nope").Code)

	form := url.Values{"command": {"battery"}}
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok: battery", body["message"])
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newServer(t)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}

type drainRecorder struct {
	drained chan struct{}
}

func (d *drainRecorder) HandleWebhook(c *gin.Context) {}

func (d *drainRecorder) Drain(ctx context.Context) error {
	close(d.drained)
	return nil
}

func TestRun_DrainsTelegramOnShutdown(t *testing.T) {
	l := log.NewNop()
	tg := &drainRecorder{drained: make(chan struct{})}
	srv, err := New(l, Config{
		Port:            5000,
		Mode:            "test",
		CommandUseCase:  stubUseCase{},
		Calendar:        stubCalendar{},
		TelegramHandler: tg,
	})
	require.NoError(t, err)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	require.NoError(t, <-done)
	select {
	case <-tg.drained:
	default:
		t.Fatal("telegram handler was not drained")
	}
}
