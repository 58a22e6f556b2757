package newsapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"personal-assistant/pkg/newsapi"
)

const headlinesJSON = `{"status":"ok","articles":[
	{"title":"First"},
	{"title":null},
	{"title":"Third"}
]}`

func TestTopHeadlines(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/top-headlines" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("apiKey") != "key" || r.URL.Query().Get("country") != "us" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(headlinesJSON))
	}))
	defer ts.Close()

	ctx := context.Background()

	t.Run("limit applied", func(t *testing.T) {
		c := newsapi.New(newsapi.Config{APIKey: "key", BaseURL: ts.URL, HTTPClient: ts.Client()})
		articles, err := c.TopHeadlines(ctx, "us", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(articles) != 2 {
			t.Fatalf("expected 2 articles, got %d", len(articles))
		}
		if articles[0].Title == nil || *articles[0].Title != "First" {
			t.Errorf("unexpected first title")
		}
		if articles[1].Title != nil {
			t.Errorf("expected null title to stay nil")
		}
	})

	t.Run("missing key", func(t *testing.T) {
		c := newsapi.New(newsapi.Config{BaseURL: ts.URL})
		if c.Configured() {
			t.Errorf("expected client without key to be unconfigured")
		}
		if _, err := c.TopHeadlines(ctx, "us", 5); !errors.Is(err, newsapi.ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("status error", func(t *testing.T) {
		c := newsapi.New(newsapi.Config{APIKey: "wrong", BaseURL: ts.URL, HTTPClient: ts.Client()})
		_, err := c.TopHeadlines(ctx, "us", 5)
		var statusErr *newsapi.StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 StatusError, got %v", err)
		}
	})

	t.Run("cache", func(t *testing.T) {
		c := newsapi.New(newsapi.Config{APIKey: "key", BaseURL: ts.URL, HTTPClient: ts.Client(), CacheTTL: time.Minute})
		before := hits.Load()
		for i := 0; i < 3; i++ {
			if _, err := c.TopHeadlines(ctx, "us", 5); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if got := hits.Load() - before; got != 1 {
			t.Errorf("expected 1 upstream call with cache, got %d", got)
		}
	})
}
