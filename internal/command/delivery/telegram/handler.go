package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	pkgResponse "personal-assistant/pkg/response"
	pkgTelegram "personal-assistant/pkg/telegram"
)

// HandleWebhook acknowledges the update immediately and dispatches the message in the background,
// since AI replies can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "internal.command.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "internal.command.delivery.telegram.processMessage: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case cmdStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgStart)
	case cmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	}

	res := h.uc.Dispatch(ctx, msg.Text)
	reply := res.Message
	if res.HasURL() {
		reply += "\n" + res.URL
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
}

// Drain waits for in-flight messages to be answered, or for ctx to end.
func (h *handler) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
