// Package regscan flags regulatory exposure in document text using fixed
// keyword lists and jurisdiction patterns.
package regscan

import (
	"sort"
	"strings"

	"aechlegal/internal/domain"
)

// Categories lists the scanned category names in scan order.
func Categories() []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.name)
	}
	return names
}

// Scan reports keyword hits per category and jurisdiction mentions. Keyword
// matching is case-insensitive substring containment; jurisdictions are
// captured from the original text so their casing is preserved.
func Scan(text string) domain.RegulatoryScanResult {
	lower := strings.ToLower(text)

	result := domain.RegulatoryScanResult{
		RegulatoryCategories: make(map[string][]string),
		Jurisdictions:        []string{},
	}
	for _, c := range categories {
		var found []string
		for _, kw := range c.keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				found = append(found, kw)
			}
		}
		if len(found) == 0 {
			continue
		}
		result.RegulatoryCategories[c.name] = found
		result.TermCount += len(found)
	}

	seen := make(map[string]struct{})
	for _, p := range jurisdictionPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 || m[1] == "" {
				continue
			}
			seen[m[1]] = struct{}{}
		}
	}
	for j := range seen {
		result.Jurisdictions = append(result.Jurisdictions, j)
	}
	sort.Strings(result.Jurisdictions)

	return result
}
