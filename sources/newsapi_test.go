package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chronicle/types"
)

func newTestNewsAPI(t *testing.T, handler http.HandlerFunc) *NewsAPISource {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src := NewNewsAPISource("test-key")
	src.endpoint = srv.URL
	return src
}

func TestNewsAPIFetch(t *testing.T) {
	src := newTestNewsAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "lunar mission" {
			t.Errorf("unexpected query %q", q.Get("q"))
		}
		if q.Get("sortBy") != "publishedAt" {
			t.Errorf("expected recency sort, got %q", q.Get("sortBy"))
		}
		if q.Get("apiKey") != "test-key" {
			t.Errorf("credential not forwarded")
		}

		fmt.Fprint(w, `{
			"status": "ok",
			"articles": [
				{"title": "Launch day", "url": "https://example.com/a", "publishedAt": "2023-07-14T09:00:00Z", "source": {"name": "Example News"}},
				{"title": "Orbit raised", "url": "https://example.com/b", "publishedAt": "2023-07-15T09:00:00Z", "source": {"name": "Example News"}}
			]
		}`)
	})

	res := src.Fetch(context.Background(), "lunar mission", 5)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Stubs) != 2 {
		t.Fatalf("expected 2 stubs, got %d", len(res.Stubs))
	}

	first := res.Stubs[0]
	if first.Title != "Launch day" || first.URL != "https://example.com/a" {
		t.Fatalf("unexpected stub %+v", first)
	}
	if first.SourceName != "Example News" {
		t.Fatalf("expected nested source name, got %q", first.SourceName)
	}
	if first.PublishedRaw != "2023-07-14T09:00:00Z" {
		t.Fatalf("expected raw timestamp preserved, got %q", first.PublishedRaw)
	}
	if first.Origin != types.OriginPrimary {
		t.Fatalf("expected primary origin, got %q", first.Origin)
	}
}

func TestNewsAPIFetchCapsAtPageSize(t *testing.T) {
	src := newTestNewsAPI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"status": "ok",
			"articles": [
				{"title": "one", "url": "https://example.com/1"},
				{"title": "two", "url": "https://example.com/2"},
				{"title": "three", "url": "https://example.com/3"}
			]
		}`)
	})

	res := src.Fetch(context.Background(), "q", 2)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Stubs) != 2 {
		t.Fatalf("expected 2 stubs, got %d", len(res.Stubs))
	}
}

func TestNewsAPIFetchMissingCredential(t *testing.T) {
	src := NewNewsAPISource("")

	res := src.Fetch(context.Background(), "anything", 5)
	if len(res.Stubs) != 0 {
		t.Fatalf("expected no stubs without credential, got %d", len(res.Stubs))
	}
	if !errors.Is(res.Err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", res.Err)
	}
}

func TestNewsAPIFetchNonSuccessStatus(t *testing.T) {
	src := newTestNewsAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	res := src.Fetch(context.Background(), "q", 5)
	if len(res.Stubs) != 0 {
		t.Fatalf("expected empty stubs on HTTP error, got %d", len(res.Stubs))
	}
	if res.Err == nil {
		t.Fatal("expected error recorded on non-200 response")
	}
}

func TestNewsAPIFetchErrorStatusField(t *testing.T) {
	src := newTestNewsAPI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "error", "articles": []}`)
	})

	res := src.Fetch(context.Background(), "q", 5)
	if len(res.Stubs) != 0 || res.Err == nil {
		t.Fatalf("expected empty result with error, got %d stubs err=%v", len(res.Stubs), res.Err)
	}
}

func TestNewsAPIFetchZeroPageSize(t *testing.T) {
	src := NewNewsAPISource("key")

	res := src.Fetch(context.Background(), "q", 0)
	if len(res.Stubs) != 0 || res.Err != nil {
		t.Fatalf("expected silent empty result, got %d stubs err=%v", len(res.Stubs), res.Err)
	}
}
