package nlp

import (
	"testing"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/pkg/logger"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(NewLexicon(), logger.NewNopLogger())
}

func TestParseEndToEnd(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name          string
		query         string
		wantType      entity.IntentType
		wantFlight    string
		wantDeparture string
		wantArrival   string
		wantAirline   string
		wantLimit     int
	}{
		{
			name:          "airline with departure city",
			query:         "Emirates flights from Dubai",
			wantType:      entity.IntentDeparture,
			wantDeparture: "DXB",
			wantLimit:     DefaultLimit,
		},
		{
			name:          "route between cities",
			query:         "Show me flights from London to Tokyo",
			wantType:      entity.IntentRoute,
			wantDeparture: "LHR",
			wantArrival:   "NRT",
			wantLimit:     DefaultLimit,
		},
		{
			name:       "flight number status",
			query:      "What's the status of EK215?",
			wantType:   entity.IntentFlightNumber,
			wantFlight: "EK215",
			wantLimit:  DefaultLimit,
		},
		{
			name:      "empty input",
			query:     "",
			wantType:  entity.IntentActiveFlights,
			wantLimit: DefaultLimit,
		},
		{
			name:      "plain greeting",
			query:     "hello",
			wantType:  entity.IntentGreeting,
			wantLimit: DefaultLimit,
		},
		{
			name:      "requested count clamped for broad queries",
			query:     "show me 25 flights",
			wantType:  entity.IntentUnknown,
			wantLimit: ActiveFlightsMaxLimit,
		},
		{
			name:        "airline only",
			query:       "emirates flights",
			wantType:    entity.IntentAirline,
			wantAirline: "EK",
			wantLimit:   DefaultLimit,
		},
		{
			name:        "unlisted airline code passes through",
			query:       "xq airline flights",
			wantType:    entity.IntentAirline,
			wantAirline: "XQ",
			wantLimit:   DefaultLimit,
		},
		{
			name:        "loose route with arrival only",
			query:       "flights to tokyo",
			wantType:    entity.IntentRoute,
			wantArrival: "NRT",
			wantLimit:   DefaultLimit,
		},
		{
			name:          "explicit count within bounds",
			query:         "show me 5 flights from paris",
			wantType:      entity.IntentDeparture,
			wantDeparture: "CDG",
			wantLimit:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := e.Parse(tt.query)
			if intent.Type != tt.wantType {
				t.Fatalf("Parse(%q).Type = %v, want %v", tt.query, intent.Type, tt.wantType)
			}
			if intent.FlightNumber != tt.wantFlight {
				t.Errorf("FlightNumber = %q, want %q", intent.FlightNumber, tt.wantFlight)
			}
			if intent.DepartureAirport != tt.wantDeparture {
				t.Errorf("DepartureAirport = %q, want %q", intent.DepartureAirport, tt.wantDeparture)
			}
			if intent.ArrivalAirport != tt.wantArrival {
				t.Errorf("ArrivalAirport = %q, want %q", intent.ArrivalAirport, tt.wantArrival)
			}
			if intent.Airline != tt.wantAirline {
				t.Errorf("Airline = %q, want %q", intent.Airline, tt.wantAirline)
			}
			if intent.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", intent.Limit, tt.wantLimit)
			}
		})
	}
}

func TestParseCountryFallback(t *testing.T) {
	e := newTestExtractor(t)

	intent := e.Parse("flights from usa to london")
	if intent.Type != entity.IntentRoute {
		t.Fatalf("Type = %v, want %v", intent.Type, entity.IntentRoute)
	}
	if intent.DepartureAirport != "JFK" {
		t.Errorf("DepartureAirport = %q, want JFK", intent.DepartureAirport)
	}
	if len(intent.DepartureAlternates) != maxCountryAirports-1 {
		t.Errorf("DepartureAlternates = %v, want %d entries", intent.DepartureAlternates, maxCountryAirports-1)
	}
	if intent.ArrivalAirport != "LHR" {
		t.Errorf("ArrivalAirport = %q, want LHR", intent.ArrivalAirport)
	}
}

func TestParseTemporal(t *testing.T) {
	e := newTestExtractor(t)

	intent := e.Parse("flights from london to tokyo on monday at 14:30")
	if intent.Date != "monday" {
		t.Errorf("Date = %q, want monday", intent.Date)
	}
	if intent.Time != "14:30" {
		t.Errorf("Time = %q, want 14:30", intent.Time)
	}
}

func TestParseConfidence(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		query string
		want  float64
	}{
		{"hello", 0.5},
		{"flights from london to tokyo", 0.8},
		{"departures from dubai", 0.7},
		{"status of ek215", 0.7},
	}

	for _, tt := range tests {
		intent := e.Parse(tt.query)
		if intent.Confidence != tt.want {
			t.Errorf("Parse(%q).Confidence = %v, want %v", tt.query, intent.Confidence, tt.want)
		}
	}
}

func TestParseIsTotal(t *testing.T) {
	// Parse never panics and always yields a positive limit
	e := newTestExtractor(t)

	inputs := []string{
		"", "   ", "?????", "from to", "to to to",
		"1234567890", "show me -5 flights", "FLIGHTS FROM LONDON TO TOKYO",
	}

	for _, input := range inputs {
		intent := e.Parse(input)
		if intent.Limit <= 0 {
			t.Errorf("Parse(%q).Limit = %d, want > 0", input, intent.Limit)
		}
		if intent.Confidence < 0 || intent.Confidence > 1 {
			t.Errorf("Parse(%q).Confidence = %v out of range", input, intent.Confidence)
		}
	}
}
