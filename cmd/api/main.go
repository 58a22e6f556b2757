package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-assistant/config"
	_ "personal-assistant/docs" // Swagger docs
	"personal-assistant/internal/adapter"
	tgDelivery "personal-assistant/internal/command/delivery/telegram"
	"personal-assistant/internal/command/usecase"
	"personal-assistant/internal/httpserver"
	"personal-assistant/internal/router"
	"personal-assistant/internal/test"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/proxy"
	"personal-assistant/pkg/telegram"
)

// @title       Personal Assistant API
// @description Command dispatcher for a personal assistant: websites, news, battery, Gmail, music and AI answers.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting personal assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Outbound HTTP client (optionally through SOCKS5)
	httpClient, err := proxy.NewHTTPClient(cfg.Proxy.SocksAddr)
	if err != nil {
		logger.Error(ctx, "Failed to create HTTP client: ", err)
		return
	}

	// 4. Adapters
	adapters := adapter.New(ctx, cfg, logger, adapter.Deps{
		LLM:        adapter.NewLLM(ctx, cfg.LLM, logger, httpClient),
		HTTPClient: httpClient,
	})

	// 5. Dispatcher
	r := router.New(logger)
	commandUC := usecase.New(logger, r, adapters, usecase.Config{
		NewsCountry: cfg.News.Country,
		NewsLimit:   cfg.News.MaxArticles,
	})

	// 6. Optional Telegram transport
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken, httpClient)
		telegramHandler = tgDelivery.New(logger, commandUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		CommandUseCase:  commandUC,
		Calendar:        adapters.Calendar,
		TelegramHandler: telegramHandler,
		TestHandler:     test.New(logger, r),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
