package usecase

import (
	"context"

	"personal-assistant/internal/command"
	"personal-assistant/internal/router"
	pkgLog "personal-assistant/pkg/log"
)

// intentHandler runs one intent. original is the raw command, normalized the
// lowercased and trimmed form the router matched on.
type intentHandler func(ctx context.Context, original, normalized string) (command.Result, error)

// Config holds the dispatcher's tunables.
type Config struct {
	Websites    router.WebsiteTable
	NewsCountry string
	NewsLimit   int
}

type implUseCase struct {
	l           pkgLog.Logger
	router      router.Router
	adapters    command.Adapters
	websites    router.WebsiteTable
	newsCountry string
	newsLimit   int
	handlers    map[router.Intent]intentHandler
}

var _ command.UseCase = (*implUseCase)(nil)

// New creates a new command UseCase instance.
func New(l pkgLog.Logger, r router.Router, adapters command.Adapters, cfg Config) *implUseCase {
	if cfg.Websites == nil {
		cfg.Websites = router.DefaultWebsites()
	}
	if cfg.NewsCountry == "" {
		cfg.NewsCountry = command.DefaultNewsCountry
	}
	if cfg.NewsLimit <= 0 {
		cfg.NewsLimit = command.DefaultNewsLimit
	}

	uc := &implUseCase{
		l:           l,
		router:      r,
		adapters:    adapters,
		websites:    cfg.Websites,
		newsCountry: cfg.NewsCountry,
		newsLimit:   cfg.NewsLimit,
	}
	uc.handlers = map[router.Intent]intentHandler{
		router.IntentOpenGoogle:    uc.handleOpenWebsite(router.IntentOpenGoogle),
		router.IntentOpenYouTube:   uc.handleOpenWebsite(router.IntentOpenYouTube),
		router.IntentOpenInstagram: uc.handleOpenWebsite(router.IntentOpenInstagram),
		router.IntentOpenAmazon:    uc.handleOpenWebsite(router.IntentOpenAmazon),
		router.IntentNews:          uc.handleNews,
		router.IntentBattery:       uc.handleBattery,
		router.IntentSendEmailHint: static(command.MsgSendEmailHint),
		router.IntentCheckEmail:    uc.handleCheckEmail,
		router.IntentPlayMusic:     uc.handlePlayMusic,
		router.IntentAIExplicit:    uc.handleAIExplicit,
		router.IntentCalendarStub:  static(command.MsgCalendarStub),
		router.IntentExit:          static(command.MsgGoodbye),
		router.IntentAIFallback:    uc.handleAIFallback,
	}
	return uc
}
