// Package aggregator orchestrates the source adapters: it merges primary
// and fallback results, deduplicates them, attaches extracted body text,
// and enforces the requested article limit.
package aggregator

import (
	"context"
	"log"
	"strings"
	"sync"

	"chronicle/config"
	"chronicle/sources"
	"chronicle/types"
)

// TextExtractor retrieves readable body text for an article URL. An empty
// string means extraction failed; that is a content-less article, not an
// error.
type TextExtractor interface {
	Extract(ctx context.Context, url string) string
}

// Aggregator merges stubs from the primary and fallback adapters into
// deduplicated, content-enriched articles.
type Aggregator struct {
	primary   sources.Source
	fallback  sources.Source
	extractor TextExtractor
	workers   int
}

// New creates an aggregator over the given adapters and extractor.
func New(primary, fallback sources.Source, extractor TextExtractor) *Aggregator {
	return &Aggregator{
		primary:   primary,
		fallback:  fallback,
		extractor: extractor,
		workers:   config.ExtractWorkerCount,
	}
}

// Aggregate fetches up to maxArticles articles for query. An empty result
// is the normal "no results" outcome; adapter failures are logged and
// treated as empty.
func (a *Aggregator) Aggregate(ctx context.Context, query string, maxArticles int) []*types.Article {
	if strings.TrimSpace(query) == "" || maxArticles < 1 {
		return nil
	}

	res := a.primary.Fetch(ctx, query, maxArticles)
	if res.Err != nil {
		log.Printf("primary source %s unavailable: %v", res.Source, res.Err)
	}
	stubs := res.Stubs

	// Top up from the fallback only when the primary came up short.
	if len(stubs) < maxArticles {
		fres := a.fallback.Fetch(ctx, query, maxArticles-len(stubs))
		if fres.Err != nil {
			log.Printf("fallback source %s unavailable: %v", fres.Source, fres.Err)
		}
		stubs = append(stubs, fres.Stubs...)
	}

	deduped := mergeStubs(stubs)
	if len(deduped) > maxArticles {
		deduped = deduped[:maxArticles]
	}

	articles := make([]*types.Article, len(deduped))
	for i, stub := range deduped {
		articles[i] = &types.Article{
			ArticleStub: stub,
			ID:          types.GenerateID(dedupKey(stub)),
			Entities:    types.NewEntityBag(),
		}
	}

	a.extractAll(ctx, articles)
	return articles
}

// mergeStubs deduplicates stubs keeping the first occurrence of each key,
// so primary results win over fallback duplicates.
func mergeStubs(stubs []types.ArticleStub) []types.ArticleStub {
	seen := make(map[string]struct{}, len(stubs))
	out := make([]types.ArticleStub, 0, len(stubs))
	for _, stub := range stubs {
		key := dedupKey(stub)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, stub)
	}
	return out
}

// extractAll attaches body text to every article using a bounded worker
// pool. Order is preserved because workers write into the articles they
// receive; a failed extraction leaves content empty and the pipeline
// continues.
func (a *Aggregator) extractAll(ctx context.Context, articles []*types.Article) {
	if len(articles) == 0 {
		return
	}

	var wg sync.WaitGroup
	articleChan := make(chan *types.Article, len(articles))

	for i := 0; i < a.workers; i++ {
		go func() {
			for article := range articleChan {
				article.Content = a.extractor.Extract(ctx, article.URL)
				wg.Done()
			}
		}()
	}

	for _, article := range articles {
		wg.Add(1)
		articleChan <- article
	}

	wg.Wait()
	close(articleChan)
}
