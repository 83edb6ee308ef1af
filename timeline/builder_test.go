package timeline

import (
	"strings"
	"testing"

	"chronicle/config"
	"chronicle/types"
)

func article(title, publishedRaw string, mentions ...string) *types.Article {
	return &types.Article{
		ArticleStub: types.ArticleStub{
			Title:        title,
			URL:          "https://example.com/" + strings.ReplaceAll(strings.ToLower(title), " ", "-"),
			SourceName:   "Example News",
			PublishedRaw: publishedRaw,
		},
		DateMentions: mentions,
	}
}

func TestBuildUsesPublishedTimestamp(t *testing.T) {
	milestones := Build([]*types.Article{
		article("Touchdown", "2023-08-23T10:00:00Z"),
	})

	if len(milestones) != 1 {
		t.Fatalf("expected 1 milestone, got %d", len(milestones))
	}
	if milestones[0].Date != "2023-08-23" {
		t.Fatalf("expected date 2023-08-23, got %q", milestones[0].Date)
	}
}

func TestBuildFallsBackToDateMention(t *testing.T) {
	milestones := Build([]*types.Article{
		article("Touchdown", "", "2023-08-23"),
	})

	if len(milestones) != 1 {
		t.Fatalf("expected 1 milestone, got %d", len(milestones))
	}
	if milestones[0].Date != "2023-08-23" {
		t.Fatalf("expected fallback date 2023-08-23, got %q", milestones[0].Date)
	}
}

func TestBuildUnparseableTimestampFallsBack(t *testing.T) {
	milestones := Build([]*types.Article{
		article("Touchdown", "sometime soon", "2023-08-23"),
	})

	if len(milestones) != 1 || milestones[0].Date != "2023-08-23" {
		t.Fatalf("expected mention fallback after parse failure, got %+v", milestones)
	}
}

func TestBuildSkipsUndatedArticles(t *testing.T) {
	milestones := Build([]*types.Article{
		article("No date at all", ""),
		article("Dated", "2023-08-23T10:00:00Z"),
		article("Garbage date", "not a timestamp"),
	})

	if len(milestones) != 1 {
		t.Fatalf("expected undated articles skipped, got %d milestones", len(milestones))
	}
	if milestones[0].Headline != "Dated" {
		t.Fatalf("unexpected milestone %+v", milestones[0])
	}
}

func TestBuildSortsAscending(t *testing.T) {
	milestones := Build([]*types.Article{
		article("Third", "2023-08-25T08:00:00Z"),
		article("First", "2023-07-14T08:00:00Z"),
		article("Second", "2023-08-23T08:00:00Z"),
	})

	if len(milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(milestones))
	}
	for i := 0; i < len(milestones)-1; i++ {
		if milestones[i].Date > milestones[i+1].Date {
			t.Fatalf("milestones out of order: %q before %q", milestones[i].Date, milestones[i+1].Date)
		}
	}
	if milestones[0].Headline != "First" {
		t.Fatalf("expected earliest first, got %q", milestones[0].Headline)
	}
}

func TestBuildStableOnEqualDates(t *testing.T) {
	milestones := Build([]*types.Article{
		article("Morning report", "2023-08-23T06:00:00Z"),
		article("Evening report", "2023-08-23T21:00:00Z"),
	})

	if len(milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(milestones))
	}
	if milestones[0].Headline != "Morning report" || milestones[1].Headline != "Evening report" {
		t.Fatalf("equal dates did not preserve input order: %+v", milestones)
	}
}

func TestBuildTruncatesHeadlineAndDescription(t *testing.T) {
	longTitle := strings.Repeat("T", 300)
	longContent := strings.Repeat("c", 1000)

	a := article(longTitle, "2023-08-23T10:00:00Z")
	a.Content = longContent

	milestones := Build([]*types.Article{a})

	if got := len(milestones[0].Headline); got != config.HeadlineLimit {
		t.Fatalf("expected headline clipped to %d, got %d", config.HeadlineLimit, got)
	}
	wantDesc := strings.Repeat("c", config.DescriptionLimit) + "..."
	if milestones[0].Description != wantDesc {
		t.Fatalf("expected ellipsized description of %d chars, got %d", len(wantDesc), len(milestones[0].Description))
	}
}

func TestBuildShortContentNotEllipsized(t *testing.T) {
	a := article("Short", "2023-08-23T10:00:00Z")
	a.Content = "Brief update."

	milestones := Build([]*types.Article{a})
	if milestones[0].Description != "Brief update." {
		t.Fatalf("unexpected description %q", milestones[0].Description)
	}
}

func TestBuildEmptyContentEmptyDescription(t *testing.T) {
	milestones := Build([]*types.Article{article("No body", "2023-08-23T10:00:00Z")})
	if milestones[0].Description != "" {
		t.Fatalf("expected empty description, got %q", milestones[0].Description)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	if got := Build(nil); len(got) != 0 {
		t.Fatalf("expected no milestones, got %d", len(got))
	}
}
