package router

import (
	"context"

	"personal-assistant/pkg/log"
)

// Router classifies commands into intents.
type Router interface {
	Classify(ctx context.Context, command string) RouterOutput
	Rules() []Rule
}

// SubstringRouter classifies by ordered substring and equality checks.
type SubstringRouter struct {
	rules []Rule
	l     log.Logger
}

var _ Router = (*SubstringRouter)(nil)

// New creates a router over DefaultRules.
func New(l log.Logger) *SubstringRouter {
	return NewWithRules(l, DefaultRules())
}

// NewWithRules creates a router over a custom rule list.
func NewWithRules(l log.Logger, rules []Rule) *SubstringRouter {
	return &SubstringRouter{
		rules: rules,
		l:     l,
	}
}
