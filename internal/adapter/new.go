package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"

	"personal-assistant/config"
	"personal-assistant/internal/command"
	"personal-assistant/pkg/battery"
	"personal-assistant/pkg/browser"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/gmail"
	pkgLog "personal-assistant/pkg/log"
	"personal-assistant/pkg/music"
	"personal-assistant/pkg/newsapi"
)

// Deps are the shared clients the adapters are built on.
type Deps struct {
	// LLM is nil when no provider could be initialized.
	LLM TextGenerator
	// HTTPClient is used for outbound calls; nil means http.DefaultClient.
	HTTPClient *http.Client
	// Prompt receives interactive OAuth instructions; nil means stdout.
	Prompt io.Writer
}

// New probes every capability once and returns the adapter bundle. Missing
// credentials or an unsupported host degrade the adapter instead of failing.
func New(ctx context.Context, cfg *config.Config, l pkgLog.Logger, deps Deps) command.Adapters {
	if deps.Prompt == nil {
		deps.Prompt = os.Stdout
	}

	var opener URLOpener
	if cfg.Browser.Enabled {
		opener = browser.New()
	} else {
		l.Infof(ctx, "internal.adapter.New: browser launching disabled")
	}

	auth := newAuthorizer(ctx, cfg, l, deps, opener)

	return command.Adapters{
		AI:       newAI(ctx, l, deps),
		Battery:  newBattery(ctx, l),
		Browser:  NewBrowser(opener),
		News:     newNews(ctx, cfg, l, deps),
		Mail:     NewMail(auth, newGmailMailer),
		Music:    newMusic(ctx, cfg, l),
		Calendar: NewCalendar(auth, newCalendarLister, cfg.GoogleCalendar.CalendarID),
	}
}

func newAI(ctx context.Context, l pkgLog.Logger, deps Deps) command.AI {
	if deps.LLM == nil {
		l.Warnf(ctx, "internal.adapter.New: no LLM provider configured, AI replies disabled")
		return NewAI(nil)
	}
	return NewAI(deps.LLM)
}

func newBattery(ctx context.Context, l pkgLog.Logger) command.Battery {
	meter := battery.New()
	if err := meter.Probe(); err != nil {
		if errors.Is(err, battery.ErrNotAvailable) {
			l.Infof(ctx, "internal.adapter.New: no battery on this host")
			return NewBattery(nil)
		}
		l.Warnf(ctx, "internal.adapter.New: battery probe failed: %v", err)
	}
	return NewBattery(meter)
}

func newNews(ctx context.Context, cfg *config.Config, l pkgLog.Logger, deps Deps) command.News {
	if cfg.News.APIKey == "" {
		l.Warnf(ctx, "internal.adapter.New: news API key not configured")
		return NewNews(nil)
	}
	return NewNews(newsapi.New(newsapi.Config{
		APIKey:     cfg.News.APIKey,
		BaseURL:    cfg.News.BaseURL,
		HTTPClient: deps.HTTPClient,
		CacheTTL:   cfg.News.CacheTTL,
	}))
}

func newMusic(ctx context.Context, cfg *config.Config, l pkgLog.Logger) command.Music {
	lib, err := music.Load(cfg.Music.LibraryPath)
	if err != nil {
		l.Warnf(ctx, "internal.adapter.New: %v, every play lookup will fail", err)
		return music.New(nil)
	}
	l.Infof(ctx, "internal.adapter.New: loaded %d songs from %s", lib.Len(), cfg.Music.LibraryPath)
	return lib
}

func newAuthorizer(ctx context.Context, cfg *config.Config, l pkgLog.Logger, deps Deps, opener URLOpener) HTTPAuthorizer {
	authCfg := gmail.AuthConfig{
		CredentialsPath: cfg.Gmail.CredentialsPath,
		TokenPath:       cfg.Gmail.TokenPath,
		RedirectPort:    cfg.Gmail.RedirectPort,
		Prompt:          deps.Prompt,
		HTTPClient:      deps.HTTPClient,
	}
	if opener != nil {
		authCfg.OpenBrowser = opener.Open
	}

	auth, err := gmail.NewAuthorizer(authCfg)
	if err != nil {
		l.Warnf(ctx, "internal.adapter.New: Google sign-in unavailable: %v", err)
		return nil
	}
	return auth
}

func newGmailMailer(ctx context.Context, client *http.Client) (command.Mailer, error) {
	c, err := gmail.NewClientFromHTTP(ctx, client)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newCalendarLister(ctx context.Context, client *http.Client) (EventLister, error) {
	c, err := gcalendar.NewClientFromHTTP(ctx, client)
	if err != nil {
		return nil, err
	}
	return c, nil
}
