package adapter

import (
	"context"
	"fmt"

	"personal-assistant/internal/command"
)

// URLOpener is the browser capability.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}

type browserAdapter struct {
	opener URLOpener
}

// NewBrowser wraps opener. A nil opener only confirms: the URL still reaches the
// caller through the result record.
func NewBrowser(opener URLOpener) command.Browser {
	return &browserAdapter{opener: opener}
}

func (b *browserAdapter) Open(ctx context.Context, url string) string {
	if b.opener != nil {
		if err := b.opener.Open(ctx, url); err != nil {
			return fmt.Sprintf("Failed to open %s: %v", url, err)
		}
	}
	return fmt.Sprintf("Opening %s", url)
}
