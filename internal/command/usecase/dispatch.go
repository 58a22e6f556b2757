package usecase

import (
	"context"
	"time"

	"personal-assistant/internal/command"
	"personal-assistant/internal/metrics"
	"personal-assistant/internal/router"
)

// Dispatch classifies command and runs the matching handler. Handler errors and
// panics are converted to an "Error: ..." message.
func (uc *implUseCase) Dispatch(ctx context.Context, cmd string) (res command.Result) {
	if cmd == "" {
		return command.Result{Message: command.MsgNoCommand}
	}

	// Custom rule predicates may panic, so Classify runs under the recover.
	intent := router.IntentAIFallback
	defer func() {
		if r := recover(); r != nil {
			res = uc.recovered(ctx, intent, r)
		}
	}()

	out := uc.router.Classify(ctx, cmd)
	intent = out.Intent

	start := time.Now()
	metrics.DispatchTotal.WithLabelValues(string(intent)).Inc()
	defer func() {
		metrics.DispatchDuration.WithLabelValues(string(intent)).Observe(time.Since(start).Seconds())
	}()

	h, ok := uc.handlers[intent]
	if !ok {
		h = uc.handlers[router.IntentAIFallback]
	}

	res, err := h(ctx, cmd, out.Normalized)
	if err != nil {
		return uc.failed(ctx, intent, err)
	}

	uc.l.Debugf(ctx, "internal.command.usecase.Dispatch: intent=%s has_url=%t", intent, res.HasURL())
	return res
}
