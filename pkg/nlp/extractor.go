package nlp

import (
	"strconv"
	"strings"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/pkg/logger"
)

// Result-count bounds. Broad active-flight queries get a tighter cap to
// bound downstream lookup cost.
const (
	DefaultLimit          = 10
	MaxLimit              = 50
	ActiveFlightsMaxLimit = 20
)

// Extractor is the single entry point of the query engine: it classifies a
// raw query and resolves its entities into a QueryIntent. It is total over
// all inputs; resolvers that find nothing leave fields empty, they never
// fail the call.
type Extractor struct {
	lexicon    *Lexicon
	resolver   *Resolver
	classifier *Classifier
	logger     logger.Logger
}

// NewExtractor creates an extractor with its resolver and classifier over a
// shared lexicon
func NewExtractor(lexicon *Lexicon, logger logger.Logger) *Extractor {
	return &Extractor{
		lexicon:    lexicon,
		resolver:   NewResolver(lexicon, logger),
		classifier: NewClassifier(lexicon, logger),
		logger:     logger,
	}
}

// Parse classifies a raw query and extracts its structured parameters.
// Blank input short-circuits to an active-flights intent with defaults.
func (e *Extractor) Parse(raw string) entity.QueryIntent {
	query := strings.ToLower(strings.TrimSpace(raw))
	if query == "" {
		return entity.QueryIntent{
			Type:       entity.IntentActiveFlights,
			Limit:      DefaultLimit,
			Confidence: baseConfidence,
		}
	}

	intent := entity.QueryIntent{
		Type: e.classifier.Classify(query),
	}

	switch intent.Type {
	case entity.IntentFlightNumber:
		e.extractFlightNumber(query, &intent)
	case entity.IntentRoute:
		e.extractRoute(query, &intent)
	case entity.IntentDeparture:
		e.extractDeparture(query, &intent)
	case entity.IntentArrival:
		e.extractArrival(query, &intent)
	case entity.IntentAirline:
		e.extractAirline(query, &intent)
	}

	e.extractTemporal(query, &intent)
	intent.Limit = e.extractLimit(query, intent.Type)
	intent.Confidence = confidence(&intent)

	e.logger.Debug("Parsed query",
		"query", query,
		"intent", intent.Type,
		"departure", intent.DepartureAirport,
		"arrival", intent.ArrivalAirport,
		"airline", intent.Airline,
		"flightNumber", intent.FlightNumber,
		"limit", intent.Limit,
		"confidence", intent.Confidence)

	return intent
}

func (e *Extractor) extractFlightNumber(query string, intent *entity.QueryIntent) {
	if match := flightNumberPattern.FindStringSubmatch(query); match != nil {
		intent.FlightNumber = strings.ToUpper(match[1])
	}
}

func (e *Extractor) extractRoute(query string, intent *entity.QueryIntent) {
	match := routePattern.FindStringSubmatch(query)
	if match == nil {
		match = looseRoutePattern.FindStringSubmatch(query)
	}
	if match == nil {
		return
	}

	depSpan := strings.TrimSpace(match[1])
	arrSpan := strings.TrimSpace(match[2])

	if code, ok := e.resolver.ResolveAirport(depSpan); ok {
		intent.DepartureAirport = code
	} else if airports := e.resolver.ResolveCountryAirports(depSpan); len(airports) > 0 {
		intent.DepartureAirport = airports[0]
		intent.DepartureAlternates = airports[1:]
	}

	if code, ok := e.resolver.ResolveAirport(arrSpan); ok {
		intent.ArrivalAirport = code
	} else if airports := e.resolver.ResolveCountryAirports(arrSpan); len(airports) > 0 {
		intent.ArrivalAirport = airports[0]
		intent.ArrivalAlternates = airports[1:]
	}
}

func (e *Extractor) extractDeparture(query string, intent *entity.QueryIntent) {
	match := departurePattern.FindStringSubmatch(query)
	if match == nil {
		return
	}
	span := strings.TrimSpace(match[1])
	if code, ok := e.resolver.ResolveAirport(span); ok {
		intent.DepartureAirport = code
	} else if airports := e.resolver.ResolveCountryAirports(span); len(airports) > 0 {
		intent.DepartureAirport = airports[0]
		intent.DepartureAlternates = airports[1:]
	}
}

func (e *Extractor) extractArrival(query string, intent *entity.QueryIntent) {
	match := arrivalPattern.FindStringSubmatch(query)
	if match == nil {
		return
	}
	span := strings.TrimSpace(match[1])
	if code, ok := e.resolver.ResolveAirport(span); ok {
		intent.ArrivalAirport = code
	} else if airports := e.resolver.ResolveCountryAirports(span); len(airports) > 0 {
		intent.ArrivalAirport = airports[0]
		intent.ArrivalAlternates = airports[1:]
	}
}

// extractAirline resolves against the whole query rather than a captured
// span: airline mentions are not always introduced by a preposition.
// Contained aliases score by how much of the query they cover; otherwise a
// fuzzy whole-query match above threshold is accepted. The last resort is a
// per-token resolver pass, which accepts bare 2-3 character codes verbatim.
func (e *Extractor) extractAirline(query string, intent *entity.QueryIntent) {
	bestCode := ""
	bestScore := 0.0

	for _, alias := range e.lexicon.SortedAirlineAliases() {
		if containsWord(query, alias) {
			score := float64(len(alias)) / float64(len(query))
			if score > bestScore {
				bestScore = score
				bestCode, _ = e.lexicon.ResolveAirlineAlias(alias)
			}
			continue
		}
		if score := Similarity(query, alias); score >= AirlineMatchThreshold && score > bestScore {
			bestScore = score
			bestCode, _ = e.lexicon.ResolveAirlineAlias(alias)
		}
	}

	if bestCode != "" {
		intent.Airline = bestCode
		return
	}

	for _, token := range strings.Fields(query) {
		if code, ok := e.resolver.ResolveAirline(token); ok {
			intent.Airline = code
			return
		}
	}
}

func (e *Extractor) extractTemporal(query string, intent *entity.QueryIntent) {
	if match := datePattern.FindStringSubmatch(query); match != nil {
		intent.Date = match[1]
	}
	if match := timePattern.FindStringSubmatch(query); match != nil {
		for _, group := range match[1:] {
			if group != "" {
				intent.Time = group
				break
			}
		}
	}
}

func (e *Extractor) extractLimit(query string, intentType entity.IntentType) int {
	bound := MaxLimit
	if intentType == entity.IntentActiveFlights || intentType == entity.IntentUnknown {
		bound = ActiveFlightsMaxLimit
	}

	for _, pattern := range limitPatterns {
		match := pattern.FindStringSubmatch(query)
		if match == nil {
			continue
		}
		limit, err := strconv.Atoi(match[1])
		if err != nil || limit <= 0 {
			continue
		}
		if limit > bound {
			limit = bound
		}
		return limit
	}

	return DefaultLimit
}

// Confidence weights: advisory metadata only, nothing branches on it.
const baseConfidence = 0.5

func confidence(intent *entity.QueryIntent) float64 {
	score := baseConfidence

	switch {
	case intent.DepartureAirport != "" && intent.ArrivalAirport != "":
		score += 0.3
	case intent.DepartureAirport != "" || intent.ArrivalAirport != "":
		score += 0.2
	}
	if intent.Airline != "" {
		score += 0.1
	}
	if intent.FlightNumber != "" {
		score += 0.2
	}
	if intent.Date != "" {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
