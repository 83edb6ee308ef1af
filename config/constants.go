package config

import "time"

// Aggregation Constants
const (
	// DefaultMaxArticles is the article count used when a request leaves it unset
	DefaultMaxArticles = 8

	// MinArticles and MaxArticles bound the per-request article count
	MinArticles = 3
	MaxArticles = 20

	// ExtractWorkerCount limits concurrent full-text extractions per aggregation
	ExtractWorkerCount = 4
)

// HTTP Constants
const (
	// SourceRequestTimeout is the per-request deadline for source adapters
	SourceRequestTimeout = 12 * time.Second

	// ExtractRequestTimeout is the per-request deadline for article downloads
	ExtractRequestTimeout = 10 * time.Second

	// ScrapeUserAgent identifies raw HTML fetches as a generic browser
	ScrapeUserAgent = "Mozilla/5.0"
)

// Extraction Constants
const (
	// MinReadableLength is the smallest plausible article body; shorter
	// readability output triggers the paragraph-scrape fallback
	MinReadableLength = 50

	// MinParagraphLength filters navigation and boilerplate fragments
	MinParagraphLength = 30

	// MaxContentLength bounds extracted text to protect memory and
	// summarizer input size
	MaxContentLength = 20000
)

// Signal Extraction Constants
const (
	// EntityCandidateLimit caps candidates before categorization so long
	// articles stay cheap to process
	EntityCandidateLimit = 30
)

// Timeline Constants
const (
	// HeadlineLimit is the display-safe milestone headline length
	HeadlineLimit = 120

	// DescriptionLimit is the milestone description snippet length
	DescriptionLimit = 400
)

// Summarization Constants
const (
	// SummaryInputLimit truncates each article body sent to the LLM service
	SummaryInputLimit = 4000

	// SummaryTemperature and SummaryMaxTokens are the fixed sampling settings
	SummaryTemperature = 0.2
	SummaryMaxTokens   = 800

	// LocalSummaryLineLimit caps the first line taken from each article
	LocalSummaryLineLimit = 250

	// LocalSummaryMaxLines caps how many articles feed the extractive summary
	LocalSummaryMaxLines = 5

	// LocalSummaryLimit caps the joined extractive summary
	LocalSummaryLimit = 1000
)

// Cache Constants
const (
	// CacheTTL is how long extracted article text stays cached
	CacheTTL = time.Hour
)
