package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"chronicle/config"
	"chronicle/types"
)

const newsAPIEndpoint = "https://newsapi.org/v2/everything"

// ErrMissingCredential marks a fetch skipped because no API key is configured.
var ErrMissingCredential = errors.New("news API key not configured")

// NewsAPISource is the primary adapter: one request against a keyword-search
// endpoint, sorted by recency, capped at pageSize. Requires a credential.
type NewsAPISource struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewNewsAPISource creates the primary source adapter. An empty apiKey is
// allowed; every fetch then returns an empty result.
func NewNewsAPISource(apiKey string) *NewsAPISource {
	return &NewsAPISource{
		apiKey:   apiKey,
		endpoint: newsAPIEndpoint,
		client:   &http.Client{Timeout: config.SourceRequestTimeout},
	}
}

func (s *NewsAPISource) Name() string { return "newsapi" }

// newsAPIResponse mirrors the keyword-search endpoint's JSON shape.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (s *NewsAPISource) Fetch(ctx context.Context, query string, pageSize int) FetchResult {
	result := FetchResult{Source: s.Name()}
	if pageSize <= 0 {
		return result
	}
	if s.apiKey == "" {
		result.Err = ErrMissingCredential
		return result
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))
	params.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		result.Err = fmt.Errorf("build request: %w", err)
		return result
	}

	resp, err := s.client.Do(req)
	if err != nil {
		result.Err = fmt.Errorf("news API request failed: %w", err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Err = fmt.Errorf("news API returned status %d", resp.StatusCode)
		return result
	}

	var parsed newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		result.Err = fmt.Errorf("decode news API response: %w", err)
		return result
	}
	if parsed.Status != "ok" {
		result.Err = fmt.Errorf("news API status %q", parsed.Status)
		return result
	}

	stubs := make([]types.ArticleStub, 0, len(parsed.Articles))
	for _, art := range parsed.Articles {
		stubs = append(stubs, types.ArticleStub{
			Title:        art.Title,
			URL:          art.URL,
			SourceName:   art.Source.Name,
			PublishedRaw: art.PublishedAt,
			Origin:       types.OriginPrimary,
		})
		if len(stubs) >= pageSize {
			break
		}
	}

	result.Stubs = stubs
	return result
}
