package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"personal-assistant/internal/command"
)

// SendEmail sends input through a fresh mail session, drafting the body from
// input.Context when it is empty.
func (uc *implUseCase) SendEmail(ctx context.Context, input command.SendEmailInput) (res command.Result) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.command.usecase.SendEmail: panic: %v", r)
			res = command.Result{Message: errorMessage(fmt.Sprint(r), string(debug.Stack()))}
		}
	}()

	to := strings.TrimSpace(input.To)
	if to == "" {
		return command.Result{Message: command.MsgRecipientRequired}
	}

	body := input.Body
	if strings.TrimSpace(body) == "" {
		body = uc.adapters.AI.DraftEmail(ctx, input.Context)
	}

	session := uc.adapters.Mail.Acquire(ctx)
	msg := uc.adapters.Mail.Send(ctx, session, to, input.Subject, body)

	uc.l.Infof(ctx, "internal.command.usecase.SendEmail: to=%s session_ok=%t", to, session.OK())
	return command.Result{Message: msg}
}
