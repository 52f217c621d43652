package nlp

import (
	"strings"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/pkg/logger"
)

// containsAirlineFuzzyThreshold gates the whole-query fuzzy check in the
// airline intent rule; tighter than the span-level threshold because the
// query usually carries extra words.
const containsAirlineFuzzyThreshold = 0.8

// Classifier maps a normalized query to exactly one intent type. It is
// stateless per call; rules are checked in a fixed priority order and the
// first match wins. A flight number is the most specific signal there is,
// so it outranks everything, greetings included; routes outrank the looser
// keyword rules so that e.g. "air" inside "airport" cannot hijack a route
// query.
type Classifier struct {
	lexicon *Lexicon
	logger  logger.Logger
}

// NewClassifier creates a classifier over the given lexicon
func NewClassifier(lexicon *Lexicon, logger logger.Logger) *Classifier {
	return &Classifier{
		lexicon: lexicon,
		logger:  logger,
	}
}

// Classify returns the intent type for a query. The input must already be
// trimmed and lowercased.
func (c *Classifier) Classify(query string) entity.IntentType {
	switch {
	case flightNumberPattern.MatchString(query):
		return entity.IntentFlightNumber
	case greetingPattern.MatchString(query):
		return entity.IntentGreeting
	case helpPattern.MatchString(query):
		return entity.IntentHelp
	case c.containsRoute(query):
		return entity.IntentRoute
	case departurePattern.MatchString(query):
		return entity.IntentDeparture
	case arrivalPattern.MatchString(query):
		return entity.IntentArrival
	case c.containsAirline(query):
		return entity.IntentAirline
	case c.containsStatus(query):
		return entity.IntentActiveFlights
	default:
		return entity.IntentUnknown
	}
}

func (c *Classifier) containsRoute(query string) bool {
	return routePattern.MatchString(query) || looseRoutePattern.MatchString(query)
}

func (c *Classifier) containsAirline(query string) bool {
	for _, keyword := range airlineKeywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	for _, alias := range c.lexicon.SortedAirlineAliases() {
		if containsWord(query, alias) || Similarity(query, alias) >= containsAirlineFuzzyThreshold {
			return true
		}
	}
	return false
}

// containsWord reports whether phrase appears in query on word boundaries.
// Plain substring matching would let two-letter airline codes fire inside
// ordinary words ("ac" in "active").
func containsWord(query, phrase string) bool {
	return strings.Contains(" "+query+" ", " "+phrase+" ")
}

func (c *Classifier) containsStatus(query string) bool {
	for _, keyword := range statusKeywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}
