package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"personal-assistant/internal/command"
	"personal-assistant/pkg/newsapi"
)

// HeadlineSource is the news capability.
type HeadlineSource interface {
	TopHeadlines(ctx context.Context, country string, limit int) ([]newsapi.Article, error)
}

type newsAdapter struct {
	source HeadlineSource
}

// NewNews wraps source. A nil source always reports a missing key.
func NewNews(source HeadlineSource) command.News {
	return &newsAdapter{source: source}
}

func (n *newsAdapter) TopHeadlines(ctx context.Context, country string, limit int) string {
	if n.source == nil {
		return MsgNewsNoKey
	}

	articles, err := n.source.TopHeadlines(ctx, country, limit)
	if err != nil {
		var statusErr *newsapi.StatusError
		switch {
		case errors.Is(err, newsapi.ErrMissingAPIKey):
			return MsgNewsNoKey
		case errors.As(err, &statusErr):
			return fmt.Sprintf("News API error: %d", statusErr.StatusCode)
		default:
			return fmt.Sprintf("Failed to fetch news: %v", err)
		}
	}
	if len(articles) == 0 {
		return MsgNewsEmpty
	}

	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.Title == nil {
			titles = append(titles, MsgNewsNoTitle)
			continue
		}
		titles = append(titles, *a.Title)
	}
	return strings.Join(titles, newsSeparator)
}
