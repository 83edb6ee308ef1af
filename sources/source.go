// Package sources contains the article source adapters: a credentialed
// keyword-search news API and a public feed-search fallback.
package sources

import (
	"context"

	"chronicle/types"
)

// Source is the interface all article adapters implement.
type Source interface {
	// Name returns the adapter name used in logs.
	Name() string

	// Fetch retrieves up to pageSize article stubs matching query.
	Fetch(ctx context.Context, query string, pageSize int) FetchResult
}

// FetchResult carries a fetch outcome as a value. Adapter failures
// (missing credential, network error, non-success response) surface as
// zero stubs with Err set for logging; they are never propagated as
// pipeline errors.
type FetchResult struct {
	Source string
	Stubs  []types.ArticleStub
	Err    error
}
