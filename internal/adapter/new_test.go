package adapter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/config"
	pkgLog "personal-assistant/pkg/log"
)

func TestNew_Unconfigured(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		News:  config.NewsConfig{},
		Gmail: config.GmailConfig{CredentialsPath: filepath.Join(dir, "missing.json"), TokenPath: filepath.Join(dir, "token.json")},
		Music: config.MusicConfig{LibraryPath: filepath.Join(dir, "missing.yaml")},
	}
	ctx := context.Background()

	a := New(ctx, cfg, pkgLog.NewNop(), Deps{Prompt: &bytes.Buffer{}})

	assert.Equal(t, MsgAIUnavailable, a.AI.Respond(ctx, "hello"))
	assert.Equal(t, MsgNewsNoKey, a.News.TopHeadlines(ctx, "us", 5))
	assert.Equal(t, MsgGmailNotConfigured, a.Mail.Acquire(ctx).Failure)
	assert.Equal(t, "Opening https://google.com", a.Browser.Open(ctx, "https://google.com"))
	_, err := a.Music.Lookup("skyfall")
	assert.Error(t, err)
	assert.NotNil(t, a.Battery)
	assert.NotNil(t, a.Calendar)
}

func TestNew_MusicLibrary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "musiclibrary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("music:\n  skyfall: https://example.com/skyfall\n"), 0o600))

	cfg := &config.Config{
		Gmail: config.GmailConfig{CredentialsPath: filepath.Join(dir, "missing.json")},
		Music: config.MusicConfig{LibraryPath: path},
	}

	a := New(context.Background(), cfg, pkgLog.NewNop(), Deps{})

	link, err := a.Music.Lookup("skyfall")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/skyfall", link)
}

func TestNewLLM(t *testing.T) {
	ctx := context.Background()

	t.Run("no providers", func(t *testing.T) {
		assert.Nil(t, NewLLM(ctx, config.LLMConfig{}, pkgLog.NewNop(), nil))
	})

	t.Run("gemini configured", func(t *testing.T) {
		cfg := config.LLMConfig{Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-flash-latest"},
		}}
		assert.NotNil(t, NewLLM(ctx, cfg, pkgLog.NewNop(), nil))
	})
}
