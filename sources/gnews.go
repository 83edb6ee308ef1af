package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"chronicle/types"

	"github.com/mmcdole/gofeed"
)

const googleNewsEndpoint = "https://news.google.com/rss/search"

// GoogleNewsSource is the fallback adapter: it queries the public Google
// News feed-search endpoint (no credential) and parses the item list. The
// aggregator only calls it to top up short primary results.
type GoogleNewsSource struct {
	endpoint string
	parser   *gofeed.Parser
}

// NewGoogleNewsSource creates the fallback source adapter.
func NewGoogleNewsSource() *GoogleNewsSource {
	return &GoogleNewsSource{
		endpoint: googleNewsEndpoint,
		parser:   gofeed.NewParser(),
	}
}

func (s *GoogleNewsSource) Name() string { return "googlenews" }

func (s *GoogleNewsSource) Fetch(ctx context.Context, query string, pageSize int) FetchResult {
	result := FetchResult{Source: s.Name()}
	if pageSize <= 0 {
		return result
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", "en-US")
	params.Set("gl", "US")
	params.Set("ceid", "US:en")

	feed, err := s.parser.ParseURLWithContext(s.endpoint+"?"+params.Encode(), ctx)
	if err != nil {
		result.Err = fmt.Errorf("feed search failed: %w", err)
		return result
	}

	count := len(feed.Items)
	if count > pageSize {
		count = pageSize
	}

	stubs := make([]types.ArticleStub, 0, count)
	for _, item := range feed.Items[:count] {
		stubs = append(stubs, types.ArticleStub{
			Title:        item.Title,
			URL:          item.Link,
			SourceName:   sourceNameFromItem(item),
			PublishedRaw: item.Published,
			Origin:       types.OriginFallback,
		})
	}

	result.Stubs = stubs
	return result
}

// sourceNameFromItem recovers the publisher name from a feed item. Google
// News titles carry it as a " - Publisher" suffix; the link host is the
// fallback.
func sourceNameFromItem(item *gofeed.Item) string {
	if idx := strings.LastIndex(item.Title, " - "); idx > 0 && idx+3 < len(item.Title) {
		return strings.TrimSpace(item.Title[idx+3:])
	}
	if u, err := url.Parse(item.Link); err == nil && u.Host != "" {
		return strings.TrimPrefix(u.Host, "www.")
	}
	return ""
}
