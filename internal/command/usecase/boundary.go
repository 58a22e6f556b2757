package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"

	"personal-assistant/internal/command"
	"personal-assistant/internal/metrics"
	"personal-assistant/internal/router"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// failed converts a handler error into an Error: message with its stack.
func (uc *implUseCase) failed(ctx context.Context, intent router.Intent, err error) command.Result {
	metrics.DispatchFailures.WithLabelValues(string(intent), metrics.FailureError).Inc()
	uc.l.Warnf(ctx, "internal.command.usecase.Dispatch: intent=%s failed: %v", intent, err)

	return command.Result{Message: errorMessage(err.Error(), errorTrace(err))}
}

// recovered converts a panic value into an Error: message with the goroutine stack.
func (uc *implUseCase) recovered(ctx context.Context, intent router.Intent, r any) command.Result {
	metrics.DispatchFailures.WithLabelValues(string(intent), metrics.FailurePanic).Inc()
	uc.l.Errorf(ctx, "internal.command.usecase.Dispatch: intent=%s panic: %v", intent, r)

	return command.Result{Message: errorMessage(fmt.Sprint(r), string(debug.Stack()))}
}

func errorMessage(text, trace string) string {
	return command.ErrorPrefix + text + "\n" + strings.TrimLeft(trace, "\n")
}

// errorTrace returns the innermost recorded stack of err.
func errorTrace(err error) string {
	var trace string
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			trace = fmt.Sprintf("%+v", st.StackTrace())
		}
	}
	if trace == "" {
		return string(debug.Stack())
	}
	return trace
}
