package main

import (
	"log"
	"net/http"

	"chronicle/aggregator"
	"chronicle/api"
	"chronicle/config"
	"chronicle/fulltext"
	"chronicle/orchestrator"
	"chronicle/sources"
	"chronicle/summarize"
)

func main() {
	cfg := config.Load()

	var cache *fulltext.Cache
	if cfg.RedisAddr != "" {
		c, err := fulltext.NewCache(fulltext.CacheConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			TTL:      config.CacheTTL,
		})
		if err != nil {
			log.Printf("Warning: extraction cache unavailable: %v (running without cache)", err)
		} else {
			cache = c
			log.Printf("Extraction cache connected at %s", cfg.RedisAddr)
		}
	}

	extractor := fulltext.NewExtractor(cache)
	primary := sources.NewNewsAPISource(cfg.NewsAPIKey)
	fallback := sources.NewGoogleNewsSource()
	agg := aggregator.New(primary, fallback, extractor)
	llm := summarize.NewCohereSummarizer(cfg.CohereAPIKey, cfg.CohereModel)
	orch := orchestrator.New(agg, llm)

	r := api.NewRouter(orch)

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/timeline")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
