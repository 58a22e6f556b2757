package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"personal-assistant/internal/command"
	"personal-assistant/internal/router"
)

func static(message string) intentHandler {
	return func(ctx context.Context, original, normalized string) (command.Result, error) {
		return command.Result{Message: message}, nil
	}
}

func (uc *implUseCase) handleOpenWebsite(intent router.Intent) intentHandler {
	return func(ctx context.Context, original, normalized string) (command.Result, error) {
		url, ok := uc.websites[intent]
		if !ok {
			return command.Result{}, errors.Errorf("no website configured for %s", intent)
		}
		msg := uc.adapters.Browser.Open(ctx, url)
		return command.Result{Message: msg, URL: url}, nil
	}
}

func (uc *implUseCase) handleNews(ctx context.Context, original, normalized string) (command.Result, error) {
	return command.Result{Message: uc.adapters.News.TopHeadlines(ctx, uc.newsCountry, uc.newsLimit)}, nil
}

func (uc *implUseCase) handleBattery(ctx context.Context, original, normalized string) (command.Result, error) {
	return command.Result{Message: uc.adapters.Battery.Status(ctx)}, nil
}

func (uc *implUseCase) handleCheckEmail(ctx context.Context, original, normalized string) (command.Result, error) {
	session := uc.adapters.Mail.Acquire(ctx)
	if session.Failure != "" {
		return command.Result{Message: session.Failure}, nil
	}
	return command.Result{Message: command.MsgGmailLoginOK}, nil
}

// handlePlayMusic takes the second space-separated token as the song name.
// A missing token or unknown song is an error for the boundary to report.
func (uc *implUseCase) handlePlayMusic(ctx context.Context, original, normalized string) (command.Result, error) {
	tokens := strings.Split(normalized, " ")
	if len(tokens) < 2 {
		return command.Result{}, errors.WithStack(command.ErrMissingSongName)
	}
	song := tokens[1]

	link, err := uc.adapters.Music.Lookup(song)
	if err != nil {
		return command.Result{}, errors.WithStack(err)
	}

	msg := uc.adapters.Browser.Open(ctx, link)
	return command.Result{Message: fmt.Sprintf("Playing %s. %s", song, msg)}, nil
}

func (uc *implUseCase) handleAIExplicit(ctx context.Context, original, normalized string) (command.Result, error) {
	reply, err := uc.adapters.AI.Generate(ctx, original)
	if err != nil {
		return command.Result{}, errors.WithStack(err)
	}
	return command.Result{Message: reply}, nil
}

func (uc *implUseCase) handleAIFallback(ctx context.Context, original, normalized string) (command.Result, error) {
	return command.Result{Message: uc.adapters.AI.Respond(ctx, original)}, nil
}
