// Package classifier triages incoming messages with fixed pattern lists.
//
// Scoring counts how many patterns of each list match at least once; a
// mentioned attachment always wins as an edit request.
package classifier

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"aechlegal/internal/domain"
)

const (
	confidenceScale = 5.0
	topicScanLines  = 5
	topicMinLen     = 10
	topicMaxLen     = 200
)

// Classify maps raw text to a classification. It is deterministic and has no
// side effects.
func Classify(text string) domain.ClassificationResult {
	lower := strings.ToLower(text)

	editScore := score(editPatterns, lower)
	researchScore := score(researchPatterns, lower)
	hasAttachment := attachmentPattern.MatchString(lower)

	var class domain.Classification
	switch {
	case editScore > researchScore || hasAttachment:
		class = domain.ClassEditRequest
	case researchScore > 0:
		class = domain.ClassResearchQuestion
	default:
		class = domain.ClassInformational
	}

	return domain.ClassificationResult{
		Classification: class,
		Confidence:     confidence(editScore, researchScore),
		EditScore:      editScore,
		ResearchScore:  researchScore,
		HasAttachment:  hasAttachment,
		Topic:          Topic(text),
	}
}

// Topic returns the first of the leading lines whose length lies strictly
// between the topic bounds, trimmed. Empty when none qualifies.
func Topic(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > topicScanLines {
		lines = lines[:topicScanLines]
	}
	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if n > topicMinLen && n < topicMaxLen {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

func score(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}

// confidence is clamped: the pattern lists are long enough to push the raw
// ratio past 1.0.
func confidence(editScore, researchScore int) float64 {
	c := float64(max(editScore, researchScore)) / confidenceScale
	if c > 1.0 {
		return 1.0
	}
	return c
}
