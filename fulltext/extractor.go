// Package fulltext retrieves readable article body text. The primary
// strategy strips boilerplate with readability; a raw paragraph scrape
// covers pages the readability parser cannot handle.
package fulltext

import (
	"context"
	"net/http"
	"strings"

	"chronicle/config"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// contentCache is the read/write surface the extractor needs from a
// cache. Set is best-effort; Get reports presence.
type contentCache interface {
	Get(ctx context.Context, url string) (string, bool)
	Set(ctx context.Context, url, text string)
}

// Extractor fetches and extracts article body text. Extraction never
// fails: callers receive an empty string when every strategy comes up
// short and must treat that as a content-less article.
type Extractor struct {
	client *http.Client
	cache  contentCache
}

// NewExtractor creates an extractor. cache may be nil; extraction then
// always goes to the network.
func NewExtractor(cache *Cache) *Extractor {
	e := &Extractor{
		client: &http.Client{Timeout: config.ExtractRequestTimeout},
	}
	if cache != nil {
		e.cache = cache
	}
	return e
}

// Extract returns readable body text for rawURL, or "" when the page is
// unreachable or yields nothing usable.
func (e *Extractor) Extract(ctx context.Context, rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return ""
	}

	if e.cache != nil {
		if text, ok := e.cache.Get(ctx, rawURL); ok {
			return text
		}
	}

	text := e.readable(rawURL)
	if len(strings.TrimSpace(text)) <= config.MinReadableLength {
		text = e.scrapeParagraphs(ctx, rawURL)
	}

	if e.cache != nil && text != "" {
		e.cache.Set(ctx, rawURL, text)
	}
	return text
}

// readable runs the boilerplate-removing full-page parse.
func (e *Extractor) readable(rawURL string) string {
	article, err := readability.FromURL(rawURL, config.ExtractRequestTimeout)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}

// scrapeParagraphs fetches raw HTML under a generic browser user agent and
// keeps paragraph nodes long enough to be prose rather than navigation.
func (e *Extractor) scrapeParagraphs(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", config.ScrapeUserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > config.MinParagraphLength {
			paragraphs = append(paragraphs, text)
		}
	})

	joined := strings.Join(paragraphs, "\n\n")
	if runes := []rune(joined); len(runes) > config.MaxContentLength {
		joined = string(runes[:config.MaxContentLength])
	}
	return joined
}
