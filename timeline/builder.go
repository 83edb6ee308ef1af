// Package timeline converts enriched articles into an ordered milestone
// sequence.
package timeline

import (
	"sort"

	"chronicle/config"
	"chronicle/signals"
	"chronicle/types"
)

// Build returns milestones sorted ascending by date. Date resolution per
// article: the source-native published timestamp first, then the first
// extracted date mention. Articles with no parseable date are skipped
// entirely; the builder never mixes skipping with sentinel dates.
// The sort is stable, so equal dates keep their input order.
func Build(articles []*types.Article) []types.Milestone {
	milestones := make([]types.Milestone, 0, len(articles))

	for _, article := range articles {
		date, ok := resolveDate(article)
		if !ok {
			continue
		}

		milestones = append(milestones, types.Milestone{
			Date:        date,
			Headline:    clip(article.Title, config.HeadlineLimit),
			Description: describe(article.Content),
			URL:         article.URL,
			SourceName:  article.SourceName,
		})
	}

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Date < milestones[j].Date
	})
	return milestones
}

func resolveDate(article *types.Article) (string, bool) {
	if article.PublishedRaw != "" {
		if iso, ok := signals.NormalizeDate(article.PublishedRaw); ok {
			return iso, true
		}
	}
	if len(article.DateMentions) > 0 {
		if iso, ok := signals.NormalizeDate(article.DateMentions[0]); ok {
			return iso, true
		}
	}
	return "", false
}

// describe returns a display snippet of the article body: empty when there
// is no content, ellipsized when clipped.
func describe(content string) string {
	if content == "" {
		return ""
	}
	runes := []rune(content)
	if len(runes) <= config.DescriptionLimit {
		return content
	}
	return string(runes[:config.DescriptionLimit]) + "..."
}

func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
