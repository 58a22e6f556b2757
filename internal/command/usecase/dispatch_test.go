package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"personal-assistant/internal/command"
	"personal-assistant/internal/router"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDispatch_Intents(t *testing.T) {
	tests := []struct {
		name      string
		command   string
		wantMsg   string
		wantURL   string
		wantCalls []string
	}{
		{"open google", "open google", "Opening https://google.com", "https://google.com", []string{"browser:https://google.com"}},
		{"open youtube mixed case", "  Open YouTube please", "Opening https://youtube.com", "https://youtube.com", []string{"browser:https://youtube.com"}},
		{"open instagram", "open instagram", "Opening https://instagram.com", "https://instagram.com", []string{"browser:https://instagram.com"}},
		{"open amazon", "open amazon", "Opening https://amazon.com", "https://amazon.com", []string{"browser:https://amazon.com"}},
		{"news phrase", "tell me the news", "A | B", "", []string{"news"}},
		{"news exact", "NEWS", "A | B", "", []string{"news"}},
		{"battery", "battery", "Battery: 80% (charging)", "", []string{"battery"}},
		{"battery substring", "check battery now", "Battery: 80% (charging)", "", []string{"battery"}},
		{"send email hint", "send email to mom", command.MsgSendEmailHint, "", nil},
		{"send an email hint", "send an email", command.MsgSendEmailHint, "", nil},
		{"check email", "check email", command.MsgGmailLoginOK, "", []string{"mail.acquire"}},
		{"play known song", "play skyfall", "Playing skyfall. Opening https://music.example/skyfall", "", []string{"browser:https://music.example/skyfall"}},
		{"ai explicit", "what is the capital of france, ai assistant", "explicit reply", "", []string{"ai.generate:what is the capital of france, ai assistant"}},
		{"ai breadth", "email me the report", "explicit reply", "", []string{"ai.generate:email me the report"}},
		{"calendar stub", "show calendar", command.MsgCalendarStub, "", nil},
		{"events stub", "any events", command.MsgCalendarStub, "", nil},
		{"exit", "exit", command.MsgGoodbye, "", nil},
		{"quit", "Quit", command.MsgGoodbye, "", nil},
		{"exit not exact", "please exit now", "fallback:please exit now", "", []string{"ai.respond:please exit now"}},
		{"fallback keeps original text", "How TALL is Everest?", "fallback:How TALL is Everest?", "", []string{"ai.respond:How TALL is Everest?"}},
		{"whitespace goes to fallback", "   ", "fallback:   ", "", []string{"ai.respond:   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			res := f.uc.Dispatch(context.Background(), tt.command)

			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Equal(t, tt.wantURL, res.URL)
			assert.Equal(t, tt.wantCalls, f.calls.all())
		})
	}
}

func TestDispatch_Empty(t *testing.T) {
	f := newFixture()

	res := f.uc.Dispatch(context.Background(), "")

	assert.Equal(t, command.Result{Message: command.MsgNoCommand}, res)
	assert.Empty(t, f.calls.all())
}

func TestDispatch_CheckEmailFailure(t *testing.T) {
	f := newFixture()
	f.mail.failure = "Gmail login failed: token revoked"

	res := f.uc.Dispatch(context.Background(), "check email")

	assert.Equal(t, "Gmail login failed: token revoked", res.Message)
	assert.False(t, res.HasURL())
}

func TestDispatch_PlayFailures(t *testing.T) {
	tests := []struct {
		name    string
		command string
		wantErr string
	}{
		{"no song", "play", "play: missing song name"},
		{"unknown song", "play unknown-song", `music: song "unknown-song" not found`},
		{"double space", "play  skyfall", `music: song "" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			res := f.uc.Dispatch(context.Background(), tt.command)

			require.True(t, strings.HasPrefix(res.Message, "Error: "+tt.wantErr+"\n"), "got %q", res.Message)
			assert.Contains(t, res.Message, "handlePlayMusic", "expected stack trace in message")
			assert.Empty(t, res.URL)
			assert.Empty(t, f.calls.all(), "browser must not open on failure")
		})
	}
}

func TestDispatch_AIExplicitErrorPropagates(t *testing.T) {
	f := newFixture()
	f.ai.err = errors.New("quota exceeded")

	res := f.uc.Dispatch(context.Background(), "ai tell me a joke")

	assert.True(t, strings.HasPrefix(res.Message, "Error: quota exceeded\n"), "got %q", res.Message)
}

func TestDispatch_PanicIsContained(t *testing.T) {
	f := newFixture()
	f.ai.panicMsg = "nil map write"

	var res command.Result
	require.NotPanics(t, func() {
		res = f.uc.Dispatch(context.Background(), "ai crash please")
	})

	assert.True(t, strings.HasPrefix(res.Message, "Error: nil map write\n"), "got %q", res.Message)
	assert.Contains(t, res.Message, "goroutine")
}

func TestDispatch_Idempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first := f.uc.Dispatch(ctx, "battery")
	second := f.uc.Dispatch(ctx, "battery")

	assert.Equal(t, first, second)
}

func TestDispatch_Concurrent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := f.uc.Dispatch(ctx, "open google")
			assert.Equal(t, "https://google.com", res.URL)
		}()
	}
	wg.Wait()

	assert.Len(t, f.calls.all(), 16)
}

func TestDispatch_CustomWebsites(t *testing.T) {
	f := newFixture()
	l := &mockLogger{}
	uc := New(l, f.uc.router, f.uc.adapters, Config{
		Websites: router.WebsiteTable{},
	})

	res := uc.Dispatch(context.Background(), "open google")

	assert.True(t, strings.HasPrefix(res.Message, "Error: no website configured for open_google"), "got %q", res.Message)
}

func TestDispatch_PanickingRuleIsContained(t *testing.T) {
	f := newFixture()
	l := &mockLogger{}
	rules := []router.Rule{{
		Intent: router.IntentBattery,
		Match:  func(string) bool { panic("bad predicate") },
	}}
	uc := New(l, router.NewWithRules(l, rules), f.uc.adapters, Config{})

	var res command.Result
	require.NotPanics(t, func() {
		res = uc.Dispatch(context.Background(), "battery")
	})

	assert.True(t, strings.HasPrefix(res.Message, "Error: bad predicate\n"), "got %q", res.Message)
	assert.False(t, res.HasURL())
}
