package aggregator

import (
	"net/url"
	"strings"

	"chronicle/types"
)

// dedupKey computes the identity key for a stub: the normalized URL when
// present, otherwise the normalized title. An empty key means the stub
// carries no usable identity; such stubs are still deduplicated against
// each other rather than silently kept twice.
func dedupKey(stub types.ArticleStub) string {
	if key := normalizeURL(stub.URL); key != "" {
		return key
	}
	return normalizeTitle(stub.Title)
}

func normalizeTitle(t string) string {
	t = strings.TrimSpace(t)
	t = strings.ToLower(t)
	// collapse multiple whitespace
	fields := strings.Fields(t)
	return strings.Join(fields, " ")
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		// fallback: lowercase and trim
		return strings.ToLower(raw)
	}

	// Lowercase scheme and host
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	// Remove fragment
	u.Fragment = ""

	// Remove common tracking query parameters
	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "fbclid" || lk == "gclid" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	// Trim trailing slash for normalization
	out := u.String()
	if strings.HasSuffix(out, "/") {
		out = strings.TrimRight(out, "/")
	}
	return out
}
