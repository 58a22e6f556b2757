package usecase

import (
	"context"
	"errors"
	"sync"

	"personal-assistant/internal/command"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/music"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// calls records which adapter was invoked with what.
type calls struct {
	mu  sync.Mutex
	log []string
}

func (c *calls) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = append(c.log, s)
}

func (c *calls) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.log...)
}

type fakeAI struct {
	c        *calls
	reply    string
	err      error
	panicMsg string
}

func (f *fakeAI) Respond(ctx context.Context, prompt string) string {
	f.c.add("ai.respond:" + prompt)
	return "fallback:" + prompt
}

func (f *fakeAI) Generate(ctx context.Context, prompt string) (string, error) {
	f.c.add("ai.generate:" + prompt)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.reply, f.err
}

func (f *fakeAI) DraftEmail(ctx context.Context, context string) string {
	f.c.add("ai.draft:" + context)
	return "Dear student, you were selected for " + context
}

type fakeBattery struct{ c *calls }

func (f *fakeBattery) Status(ctx context.Context) string {
	f.c.add("battery")
	return "Battery: 80% (charging)"
}

type fakeBrowser struct{ c *calls }

func (f *fakeBrowser) Open(ctx context.Context, url string) string {
	f.c.add("browser:" + url)
	return "Opening " + url
}

type fakeNews struct{ c *calls }

func (f *fakeNews) TopHeadlines(ctx context.Context, country string, limit int) string {
	f.c.add("news")
	return "A | B"
}

type fakeMailer struct {
	c   *calls
	err error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	f.c.add("mailer:" + to + ":" + subject + ":" + body)
	return f.err
}

type fakeMail struct {
	c       *calls
	failure string
}

func (f *fakeMail) Acquire(ctx context.Context) command.MailSession {
	f.c.add("mail.acquire")
	if f.failure != "" {
		return command.MailSession{Failure: f.failure}
	}
	return command.MailSession{Mailer: &fakeMailer{c: f.c}}
}

func (f *fakeMail) Send(ctx context.Context, s command.MailSession, to, subject, body string) string {
	if s.Failure != "" {
		return "Gmail error: " + s.Failure
	}
	if err := s.Mailer.Send(ctx, to, subject, body); err != nil {
		return "Failed to send email: " + err.Error()
	}
	return "Email sent successfully."
}

type fakeCalendar struct{}

func (fakeCalendar) Upcoming(ctx context.Context, days int, max int64) ([]gcalendar.Event, error) {
	return nil, errors.New("not used by dispatch")
}

type fixture struct {
	calls *calls
	ai    *fakeAI
	mail  *fakeMail
	uc    *implUseCase
}

func newFixture() *fixture {
	c := &calls{}
	f := &fixture{
		calls: c,
		ai:    &fakeAI{c: c, reply: "explicit reply"},
		mail:  &fakeMail{c: c},
	}
	adapters := command.Adapters{
		AI:       f.ai,
		Battery:  &fakeBattery{c: c},
		Browser:  &fakeBrowser{c: c},
		News:     &fakeNews{c: c},
		Mail:     f.mail,
		Music:    music.New(map[string]string{"skyfall": "https://music.example/skyfall"}),
		Calendar: fakeCalendar{},
	}
	l := &mockLogger{}
	f.uc = New(l, router.New(l), adapters, Config{})
	return f
}
