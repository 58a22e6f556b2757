package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/command"
	pkgLog "personal-assistant/pkg/log"
	pkgTelegram "personal-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	Drain(ctx context.Context) error
}

// Sender delivers a reply to a chat. *pkgTelegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

var _ Sender = (*pkgTelegram.Bot)(nil)

type handler struct {
	l       pkgLog.Logger
	uc      command.UseCase
	bot     Sender
	pending sync.WaitGroup
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc command.UseCase, bot Sender) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
