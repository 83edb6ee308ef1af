package signals

import (
	"regexp"
	"sort"
	"strings"

	"github.com/araddon/dateparse"
)

// dateRe matches day/month-name/year shaped tokens, including informal
// variants with abbreviated month names and 2-4 digit years.
var dateRe = regexp.MustCompile(`(?i)\b(?:\d{1,2}[\s/-])?(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[\s/-]?\d{2,4}\b`)

// FindDates scans text for date-shaped tokens and returns the ones that
// normalize to calendar dates, deduplicated and sorted ascending (ISO
// strings sort chronologically). Unparseable matches are skipped, never
// surfaced as errors.
func FindDates(text string) []string {
	if text == "" {
		return nil
	}

	matches := dateRe.FindAllString(text, -1)

	seen := make(map[string]struct{}, len(matches))
	dates := make([]string, 0, len(matches))
	for _, m := range matches {
		iso, ok := NormalizeDate(m)
		if !ok {
			continue
		}
		if _, dup := seen[iso]; dup {
			continue
		}
		seen[iso] = struct{}{}
		dates = append(dates, iso)
	}

	sort.Strings(dates)
	return dates
}

// NormalizeDate parses free-form date text into an ISO-8601 calendar date.
// The bool result reports success; parse failures mean "no date here".
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
