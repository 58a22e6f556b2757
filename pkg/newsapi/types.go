package newsapi

import (
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://newsapi.org/v2"
	DefaultCountry = "us"
	DefaultLimit   = 5

	cacheSize = 32
)

// Config configures the headlines client.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	// CacheTTL keeps a country's headlines for this long. Zero disables caching.
	CacheTTL time.Duration
}

// Article is the subset of a NewsAPI article the assistant reads.
type Article struct {
	Title *string `json:"title"`
	URL   string  `json:"url"`
}

type topHeadlinesResponse struct {
	Status   string    `json:"status"`
	Articles []Article `json:"articles"`
}
