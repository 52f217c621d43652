package nlp

import (
	"regexp"
	"strings"

	"flightchat-service/pkg/logger"
)

const maxCountryAirports = 5

var airlineCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{2,3}$`)

// Resolver turns free-text spans into canonical airport and airline codes.
// Exact alias lookup first, fuzzy match above threshold second; below
// threshold it never guesses.
type Resolver struct {
	lexicon *Lexicon
	logger  logger.Logger
}

// NewResolver creates a resolver over the given lexicon
func NewResolver(lexicon *Lexicon, logger logger.Logger) *Resolver {
	return &Resolver{
		lexicon: lexicon,
		logger:  logger,
	}
}

// ResolveAirport resolves a span to an airport IATA code. Returns
// ("", false) when nothing clears the threshold.
func (r *Resolver) ResolveAirport(span string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(span))
	if cleaned == "" {
		return "", false
	}

	if code, ok := r.lexicon.ResolveAirportAlias(cleaned); ok {
		return code, true
	}

	bestCode := ""
	bestScore := 0.0
	for _, alias := range r.lexicon.SortedAirportAliases() {
		score := Similarity(cleaned, alias)
		if score >= AirportMatchThreshold && score > bestScore {
			bestScore = score
			bestCode, _ = r.lexicon.ResolveAirportAlias(alias)
		}
	}

	if bestCode == "" {
		r.logger.Debug("No airport match", "span", cleaned)
		return "", false
	}

	r.logger.Debug("Fuzzy airport match", "span", cleaned, "code", bestCode, "score", bestScore)
	return bestCode, true
}

// ResolveAirline resolves a span to an airline code. When no alias matches,
// a span that already looks like a bare 2-3 character code is uppercased and
// returned verbatim.
func (r *Resolver) ResolveAirline(span string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(span))
	if cleaned == "" {
		return "", false
	}

	if code, ok := r.lexicon.ResolveAirlineAlias(cleaned); ok {
		return code, true
	}

	bestCode := ""
	bestScore := 0.0
	for _, alias := range r.lexicon.SortedAirlineAliases() {
		score := Similarity(cleaned, alias)
		if score >= AirlineMatchThreshold && score > bestScore {
			bestScore = score
			bestCode, _ = r.lexicon.ResolveAirlineAlias(alias)
		}
	}

	if bestCode != "" {
		r.logger.Debug("Fuzzy airline match", "span", cleaned, "code", bestCode, "score", bestScore)
		return bestCode, true
	}

	if airlineCodePattern.MatchString(cleaned) {
		return strings.ToUpper(cleaned), true
	}

	return "", false
}

// ResolveCountryAirports returns up to the first five airport codes for a
// country mention, major airports first. Empty when the span is not a
// known country.
func (r *Resolver) ResolveCountryAirports(span string) []string {
	airports := r.lexicon.AirportsForCountry(span)
	if len(airports) > maxCountryAirports {
		airports = airports[:maxCountryAirports]
	}
	return airports
}
