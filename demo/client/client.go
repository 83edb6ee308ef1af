package client

import (
	"net/http"
	"os"
	"time"
)

// Client talks to the Chronicle API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new application client. Timeline generation waits on
// source fetches, extraction, and the LLM, so the timeout is generous.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
