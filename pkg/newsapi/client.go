package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Client fetches top headlines from NewsAPI.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, []Article]
}

// New creates a headlines client. An empty API key is allowed; every call then
// fails with ErrMissingAPIKey.
func New(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
	if cfg.CacheTTL > 0 {
		c.cache = expirable.NewLRU[string, []Article](cacheSize, nil, cfg.CacheTTL)
	}
	return c
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// TopHeadlines returns up to limit articles for the given country.
func (c *Client) TopHeadlines(ctx context.Context, country string, limit int) ([]Article, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if country == "" {
		country = DefaultCountry
	}

	articles, ok := c.cached(country)
	if !ok {
		var err error
		articles, err = c.fetch(ctx, country)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			c.cache.Add(country, articles)
		}
	}

	if limit >= 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (c *Client) cached(country string) ([]Article, bool) {
	if c.cache == nil {
		return nil, false
	}
	return c.cache.Get(country)
}

func (c *Client) fetch(ctx context.Context, country string) ([]Article, error) {
	q := url.Values{}
	q.Set("country", country)
	q.Set("apiKey", c.apiKey)
	endpoint := fmt.Sprintf("%s/top-headlines?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var body topHeadlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", err)
	}
	return body.Articles, nil
}
