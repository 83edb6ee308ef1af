package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Origin identifies which source adapter produced an article stub.
type Origin string

const (
	OriginPrimary  Origin = "primary"
	OriginFallback Origin = "fallback"
)

// ArticleStub is the minimal article metadata a source adapter returns
// before any body text is attached. PublishedRaw carries the source-native
// timestamp text unparsed; date resolution happens downstream.
type ArticleStub struct {
	Title        string `json:"title,omitempty"`
	URL          string `json:"url"`
	SourceName   string `json:"source_name,omitempty"`
	PublishedRaw string `json:"published_raw,omitempty"`
	Origin       Origin `json:"origin"`
}

// Article is a stub enriched with extracted body text and heuristic signals.
type Article struct {
	ArticleStub

	ID           string    `json:"id"`
	Content      string    `json:"content"`
	Entities     EntityBag `json:"entities"`
	DateMentions []string  `json:"date_mentions,omitempty"`
	// Reliability is a rough 30-100 score derived from extracted content length.
	Reliability int `json:"reliability"`
}

// Milestone is a single dated, titled, linked entry in the output timeline.
type Milestone struct {
	Date        string `json:"date"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	SourceName  string `json:"source_name,omitempty"`
}

// TimelineResult is the full pipeline output consumed by rendering clients.
type TimelineResult struct {
	Query        string         `json:"query"`
	Articles     []*Article     `json:"articles"`
	Milestones   []Milestone    `json:"milestones"`
	Summary      string         `json:"summary"`
	SourceCounts map[string]int `json:"source_counts,omitempty"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// GenerateID creates a stable short ID from a URL or title key
func GenerateID(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:])[:16]
}
