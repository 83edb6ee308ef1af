package summarize

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chronicle/config"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const summaryPreamble = "You are an AI that summarizes multiple news articles. " +
	"Output: (1) a timeline of events with ISO dates, " +
	"(2) a two-paragraph summary, " +
	"(3) conflicts between sources."

// CohereSummarizer sends concatenated article bodies to the Cohere chat
// API. A missing credential or request failure produces a descriptive
// message instead of a summary.
type CohereSummarizer struct {
	client *cohereclient.Client
	model  string
}

// NewCohereSummarizer creates the LLM summarizer. An empty apiKey is
// allowed; Summarize then reports the missing credential.
func NewCohereSummarizer(apiKey, model string) *CohereSummarizer {
	if apiKey == "" {
		return &CohereSummarizer{model: model}
	}

	// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the API edge
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereSummarizer{client: client, model: model}
}

func (s *CohereSummarizer) Summarize(ctx context.Context, texts []string) string {
	if s.client == nil {
		return "Cohere API key missing. Set COHERE_API_KEY in the environment."
	}

	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, clipRunes(t, config.SummaryInputLimit))
	}
	combined := strings.Join(parts, "\n\n---\n\n")

	temperature := config.SummaryTemperature
	maxTokens := config.SummaryMaxTokens
	preamble := summaryPreamble

	resp, err := s.client.Chat(ctx, &cohere.ChatRequest{
		Message:     "Articles:\n" + combined,
		Model:       &s.model,
		Preamble:    &preamble,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return fmt.Sprintf("AI summarization failed: %v", err)
	}

	return strings.TrimSpace(resp.Text)
}

func clipRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
