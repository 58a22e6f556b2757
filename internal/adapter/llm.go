package adapter

import (
	"context"
	"net/http"

	"personal-assistant/config"
	"personal-assistant/pkg/llmprovider"
	pkgLog "personal-assistant/pkg/log"
)

// NewLLM builds the provider manager from cfg. It returns nil when no provider
// could be initialized, which leaves the AI adapter in its unavailable state.
func NewLLM(ctx context.Context, cfg config.LLMConfig, l pkgLog.Logger, httpClient *http.Client) TextGenerator {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg, httpClient)
	if err != nil {
		l.Warnf(ctx, "internal.adapter.NewLLM: %v", err)
		return nil
	}

	for _, p := range providers {
		l.Infof(ctx, "internal.adapter.NewLLM: provider=%s model=%s", p.Name(), p.Model())
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
	}, l)
}
