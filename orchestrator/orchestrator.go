// Package orchestrator runs the full pipeline for one query: aggregate
// articles, derive signals, build the timeline, and produce a summary.
package orchestrator

import (
	"context"
	"log"
	"strings"
	"time"

	"chronicle/aggregator"
	"chronicle/config"
	"chronicle/signals"
	"chronicle/summarize"
	"chronicle/timeline"
	"chronicle/types"
)

// Request describes one timeline generation run.
type Request struct {
	Query       string
	MaxArticles int
	// Strategy selects the summarizer: summarize.StrategyLLM (default) or
	// summarize.StrategyLocal.
	Strategy string
}

// Orchestrator wires the aggregator and summarizers into one pipeline.
type Orchestrator struct {
	aggregator *aggregator.Aggregator
	llm        summarize.Summarizer
	local      summarize.Summarizer
}

// New creates an orchestrator. llm handles summarize.StrategyLLM requests;
// the local extractive fallback is always available.
func New(agg *aggregator.Aggregator, llm summarize.Summarizer) *Orchestrator {
	return &Orchestrator{
		aggregator: agg,
		llm:        llm,
		local:      summarize.LocalSummarizer{},
	}
}

// Run executes the pipeline end to end. Zero articles is the normal
// "no results" outcome and yields an empty result, not an error; degraded
// enrichment (empty content, missing dates) still produces valid articles
// and milestones.
func (o *Orchestrator) Run(ctx context.Context, req Request) *types.TimelineResult {
	maxArticles := req.MaxArticles
	if maxArticles <= 0 {
		maxArticles = config.DefaultMaxArticles
	}
	if maxArticles > config.MaxArticles {
		maxArticles = config.MaxArticles
	}

	articles := o.aggregator.Aggregate(ctx, req.Query, maxArticles)
	log.Printf("Aggregated %d articles for %q", len(articles), req.Query)

	texts := make([]string, 0, len(articles))
	for _, article := range articles {
		text := article.Content
		if text == "" {
			text = article.Title
		}
		article.Entities = signals.ExtractEntities(text)
		article.DateMentions = signals.FindDates(article.Content + " " + article.Title)
		article.Reliability = reliabilityScore(article.Content)
		texts = append(texts, text)
	}

	milestones := timeline.Build(articles)
	log.Printf("Built %d milestones", len(milestones))

	var summary string
	if len(articles) > 0 {
		summary = o.summarizer(req.Strategy).Summarize(ctx, texts)
	}

	return &types.TimelineResult{
		Query:        req.Query,
		Articles:     articles,
		Milestones:   milestones,
		Summary:      summary,
		SourceCounts: countSources(articles),
		GeneratedAt:  time.Now(),
	}
}

func (o *Orchestrator) summarizer(strategy string) summarize.Summarizer {
	if strategy == summarize.StrategyLocal {
		return o.local
	}
	return o.llm
}

// reliabilityScore maps extracted content length onto a rough 30-100
// authenticity score for the sources view.
func reliabilityScore(content string) int {
	n := len(strings.TrimSpace(content))
	score := n / 50
	if score < 30 {
		score = 30
	}
	if score > 100 {
		score = 100
	}
	return score
}

func countSources(articles []*types.Article) map[string]int {
	if len(articles) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, article := range articles {
		name := article.SourceName
		if name == "" {
			name = "Unknown"
		}
		counts[name]++
	}
	return counts
}
