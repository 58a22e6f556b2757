package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"personal-assistant/config"
	"personal-assistant/internal/adapter"
	"personal-assistant/internal/command/delivery/console"
	"personal-assistant/internal/command/usecase"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/proxy"
)

func main() {
	pflag.String("env", ".env", "dotenv file loaded before the config")
	pflag.String("config", "", "explicit config file (default: search ./config, ., /etc/assistant/)")
	pflag.String("log", "warn", "log level")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to bind flags:", err)
		os.Exit(1)
	}

	if err := config.LoadEnvFile(viper.GetString("env")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// Results go to stdout, logs to stderr.
	logger := log.Init(log.ZapConfig{
		Level:    viper.GetString("log"),
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
		Output:   os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient, err := proxy.NewHTTPClient(cfg.Proxy.SocksAddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create HTTP client:", err)
		os.Exit(1)
	}

	adapters := adapter.New(ctx, cfg, logger, adapter.Deps{
		LLM:        adapter.NewLLM(ctx, cfg.LLM, logger, httpClient),
		HTTPClient: httpClient,
		Prompt:     os.Stderr,
	})
	uc := usecase.New(logger, router.New(logger), adapters, usecase.Config{
		NewsCountry: cfg.News.Country,
		NewsLimit:   cfg.News.MaxArticles,
	})

	if err := console.New(logger, uc, os.Stdin, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
