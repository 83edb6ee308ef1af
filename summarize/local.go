package summarize

import (
	"context"
	"strings"

	"chronicle/config"
)

// LocalSummarizer is the extractive fallback: it stitches together the
// opening line of each article body. No external dependency, always
// succeeds.
type LocalSummarizer struct{}

func (LocalSummarizer) Summarize(_ context.Context, texts []string) string {
	return Lightweight(texts)
}

// Lightweight joins the first line of up to five article bodies, each
// capped at 250 characters, into a single summary of at most 1000
// characters (ellipsized when clipped).
func Lightweight(texts []string) string {
	lines := make([]string, 0, config.LocalSummaryMaxLines)
	for _, text := range texts {
		if len(lines) >= config.LocalSummaryMaxLines {
			break
		}
		first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
		first = strings.TrimSpace(first)
		if first == "" {
			continue
		}
		lines = append(lines, clipRunes(first, config.LocalSummaryLineLimit))
	}

	summary := strings.Join(lines, " ")
	if len([]rune(summary)) > config.LocalSummaryLimit {
		summary = clipRunes(summary, config.LocalSummaryLimit) + "..."
	}
	return summary
}
