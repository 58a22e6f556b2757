package adapter

import (
	"context"
	"fmt"

	"personal-assistant/internal/command"
)

// TextGenerator is the LLM capability the AI adapter needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

type aiAdapter struct {
	gen TextGenerator
}

// NewAI wraps gen. A nil gen yields an adapter that always reports the AI as unavailable.
func NewAI(gen TextGenerator) command.AI {
	if gen == nil {
		return unavailableAI{}
	}
	return &aiAdapter{gen: gen}
}

func (a *aiAdapter) Respond(ctx context.Context, prompt string) string {
	text, err := a.gen.GenerateText(ctx, "", prompt)
	if err != nil {
		return fmt.Sprintf("AI error: %v", err)
	}
	return text
}

func (a *aiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	return a.gen.GenerateText(ctx, "", prompt)
}

func (a *aiAdapter) DraftEmail(ctx context.Context, context string) string {
	text, err := a.gen.GenerateText(ctx, "", fmt.Sprintf(emailPrompt, context))
	if err != nil {
		return fmt.Sprintf("Failed to generate email: %v", err)
	}
	return text
}

type unavailableAI struct{}

func (unavailableAI) Respond(ctx context.Context, prompt string) string {
	return MsgAIUnavailable
}

func (unavailableAI) Generate(ctx context.Context, prompt string) (string, error) {
	return "", command.ErrAIUnavailable
}

func (unavailableAI) DraftEmail(ctx context.Context, context string) string {
	return fmt.Sprintf(emailTemplate, context)
}
