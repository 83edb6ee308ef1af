// Package summarize produces the natural-language synthesis of the
// aggregated articles, either through an external LLM service or a local
// extractive fallback.
package summarize

import "context"

// Strategy names for selecting a summarizer.
const (
	StrategyLLM   = "llm"
	StrategyLocal = "local"
)

// Summarizer turns article bodies into a prose summary. Implementations
// never fail: a service error comes back as a human-readable message in
// place of the summary, so rendering clients have something to show.
type Summarizer interface {
	Summarize(ctx context.Context, texts []string) string
}
