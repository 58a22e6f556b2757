package console

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/internal/command"
	"personal-assistant/pkg/log"
)

type echoUseCase struct {
	got []string
}

func (e *echoUseCase) Dispatch(ctx context.Context, cmd string) command.Result {
	e.got = append(e.got, cmd)
	if cmd == "open google" {
		return command.Result{Message: "Opening Google", URL: "https://google.com"}
	}
	return command.Result{Message: "echo: " + cmd}
}

func (e *echoUseCase) SendEmail(ctx context.Context, input command.SendEmailInput) command.Result {
	return command.Result{}
}

func run(t *testing.T, input string) (*echoUseCase, []string) {
	t.Helper()
	uc := &echoUseCase{}
	var out bytes.Buffer
	require.NoError(t, New(log.NewNop(), uc, strings.NewReader(input), &out).Run(context.Background()))
	return uc, strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestRun_QuitStopsLoop(t *testing.T) {
	uc, lines := run(t, "  open google  \nbattery\nquit\nnever read\n")

	assert.Equal(t, []string{"open google", "battery"}, uc.got)
	require.Len(t, lines, 4)
	assert.Equal(t, Banner, lines[0])

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[1], Prompt)), &first))
	assert.Equal(t, "Opening Google", first["message"])
	assert.Equal(t, "https://google.com", first["url"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[2], Prompt)), &second))
	assert.Equal(t, "echo: battery", second["message"])
	assert.NotContains(t, second, "url")

	assert.Equal(t, Prompt+MsgBye, lines[3])
}

func TestRun_ExitIsCaseSensitive(t *testing.T) {
	uc, _ := run(t, "EXIT\nexit\n")
	assert.Equal(t, []string{"EXIT"}, uc.got)
}

func TestRun_EmptyLineIsDispatched(t *testing.T) {
	uc, _ := run(t, "\n   \nquit\n")
	assert.Equal(t, []string{"", ""}, uc.got)
}

func TestRun_EndOfInput(t *testing.T) {
	uc, lines := run(t, "news")
	assert.Equal(t, []string{"news"}, uc.got)
	assert.Equal(t, Prompt, lines[len(lines)-1])
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := &echoUseCase{}
	var out bytes.Buffer
	require.NoError(t, New(log.NewNop(), uc, strings.NewReader("news\n"), &out).Run(ctx))
	assert.Empty(t, uc.got)
	assert.Equal(t, Banner+"\n", out.String())
}
