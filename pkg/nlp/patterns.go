package nlp

import "regexp"

// Compiled query patterns. Route spans are non-greedy and stop at a
// following " on "/" at " marker, a digit, or the end of the phrase.
var (
	flightNumberPattern = regexp.MustCompile(`\b([A-Za-z]{1,3}\d{1,4}[A-Za-z]?)\b`)

	routePattern      = regexp.MustCompile(`\b(?:from|departure|departing|leaving)\s+([a-zA-Z ]+?)\s+(?:to|arrival|arriving|going|bound|→|->)\s+([a-zA-Z ]+?)(?:\s+on\s|\s+at\s|\s*$|\s+\d)`)
	looseRoutePattern = regexp.MustCompile(`\b([a-zA-Z ]{2,20}?)\s+(?:to|→|->)\s+([a-zA-Z ]{2,20}?)(?:\s+on\s|\s+at\s|\s*$|\s+\d)`)

	departurePattern = regexp.MustCompile(`\b(?:from|departure|departing|leaving|out of)\s+([a-zA-Z ]+?)(?:\s+on\s|\s+at\s|\s*$|\s+\d)`)
	arrivalPattern   = regexp.MustCompile(`\b(?:to|arrival|arriving|landing at|going to)\s+([a-zA-Z ]+?)(?:\s+on\s|\s+at\s|\s*$|\s+\d)`)

	greetingPattern = regexp.MustCompile(`\b(hello|hi|hey|good morning|good afternoon|good evening|greetings)\b`)
	helpPattern     = regexp.MustCompile(`\b(help|commands|options)\b|what can you do|how does this work`)

	datePattern = regexp.MustCompile(`\b(?:on\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday|today|tomorrow|\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?)\b`)
	// A bare hour only counts as a time when introduced by "at"; otherwise a
	// colon or meridiem marker is required so result counts are not mistaken
	// for times.
	timePattern = regexp.MustCompile(`\bat\s+(\d{1,2}(?::\d{2})?(?:\s*(?:am|pm))?)\b|\b(\d{1,2}:\d{2}(?:\s*(?:am|pm))?)\b|\b(\d{1,2}\s*(?:am|pm))\b`)

	// Checked in order; the first match wins.
	limitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:show|display|give|find)\s+(?:me\s+)?(?:the\s+)?(?:top\s+|first\s+)?(\d+)`),
		regexp.MustCompile(`\b(\d+)\s+(?:flights|results)`),
		regexp.MustCompile(`\blimit\s+(\d+)`),
	}
)

// Keyword sets for the looser intent checks
var (
	airlineKeywords = []string{"airline", "carrier", "company", "airways", "air"}
	statusKeywords  = []string{"active", "live", "current", "now", "status", "tracking", "real time", "realtime"}
)
