package classifier

import "regexp"

// Edit patterns: imperative change requests, section references, markup.
var editPatterns = []*regexp.Regexp{
	regexp.MustCompile(`please (?:change|update|modify|revise)`),
	regexp.MustCompile(`change .+ to`),
	regexp.MustCompile(`replace .+ with`),
	regexp.MustCompile(`in section \d`),
	regexp.MustCompile(`attached.+(?:markup|redline|comments)`),
	regexp.MustCompile(`see (?:my |the )?comments`),
}

// Research patterns: investigation requests and yes/no legal questions.
var researchPatterns = []*regexp.Regexp{
	regexp.MustCompile(`can you (?:check|research|look into|find out)`),
	regexp.MustCompile(`what (?:is|are) the (?:requirements?|rules?|regulations?)`),
	regexp.MustCompile(`do we need`),
	regexp.MustCompile(`is it (?:required|necessary|possible)`),
	regexp.MustCompile(`please (?:research|investigate|look into)`),
	// A question mark closing the message, optionally followed by one newline.
	regexp.MustCompile(`\?\n?$`),
}

var attachmentPattern = regexp.MustCompile(`attach|enclosed|see the file`)
