// scripts/google-auth/main.go
//
// Run this once on a machine with a browser to authorize Gmail and Google
// Calendar access and write the token file the assistant reuses.
//
// Usage:
//   go run scripts/google-auth/main.go
//
// Paths and the redirect port come from config.yaml / .env (gmail.*).

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"personal-assistant/config"
	"personal-assistant/pkg/browser"
	"personal-assistant/pkg/gmail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	auth, err := gmail.NewAuthorizer(gmail.AuthConfig{
		CredentialsPath: cfg.Gmail.CredentialsPath,
		TokenPath:       cfg.Gmail.TokenPath,
		RedirectPort:    cfg.Gmail.RedirectPort,
		OpenBrowser:     browser.New().Open,
		Prompt:          os.Stdout,
	})
	if err != nil {
		log.Fatalf("Failed to read credentials %q: %v\nDownload an OAuth Desktop App client from the Google Cloud console.", cfg.Gmail.CredentialsPath, err)
	}

	tok, err := auth.Token(context.Background())
	if err != nil {
		log.Fatalf("Authorization failed: %v", err)
	}

	fmt.Printf("Token saved to %s (expires %s)\n", cfg.Gmail.TokenPath, tok.Expiry.Format("2006-01-02 15:04"))
}
