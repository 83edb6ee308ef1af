// Package signals derives lightweight structured signals (entities and
// date mentions) from free text via pattern heuristics. It is pure text
// in, structure out, so a real NLP model can replace it without touching
// callers.
package signals

import (
	"regexp"
	"strings"

	"chronicle/config"
	"chronicle/types"
)

// candidateRe captures maximal runs of capitalized words. Interior
// capitals are accepted so camel-cased brand names stay one token.
var candidateRe = regexp.MustCompile(`\b[A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*`)

// stopwords are capitalized function words that start sentences and
// clauses; they are never entities on their own.
var stopwords = map[string]struct{}{
	"The": {}, "A": {}, "In": {}, "On": {}, "At": {},
	"Of": {}, "And": {}, "For": {}, "With": {}, "To": {},
}

// orgMarkers flag organization names by substring.
var orgMarkers = []string{"University", "Corp", "Inc", "AI", "Company"}

// countries is the fixed GPE list.
var countries = map[string]struct{}{
	"India": {}, "USA": {}, "China": {}, "Russia": {}, "Germany": {}, "UK": {},
}

// ExtractEntities scans text for capitalized-word runs and buckets them
// into the four fixed categories. The ORG marker check runs before the
// two-word person rule so names like "OpenAI Inc" land in ORG.
func ExtractEntities(text string) types.EntityBag {
	bag := types.NewEntityBag()
	if text == "" {
		return bag
	}

	matches := candidateRe.FindAllString(text, -1)

	seen := make(map[string]struct{}, len(matches))
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, stop := stopwords[m]; stop {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		candidates = append(candidates, m)
		if len(candidates) >= config.EntityCandidateLimit {
			break
		}
	}

	for _, c := range candidates {
		bag.Add(categorize(c), c)
	}
	return bag
}

func categorize(candidate string) types.EntityCategory {
	for _, marker := range orgMarkers {
		if strings.Contains(candidate, marker) {
			return types.EntityOrg
		}
	}
	if len(strings.Fields(candidate)) == 2 {
		return types.EntityPerson
	}
	if _, ok := countries[candidate]; ok {
		return types.EntityGPE
	}
	return types.EntityMisc
}
