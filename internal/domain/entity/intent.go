package entity

// IntentType classifies the purpose of a chat query
type IntentType string

const (
	IntentGreeting      IntentType = "greeting"
	IntentHelp          IntentType = "help"
	IntentFlightNumber  IntentType = "flight_number"
	IntentRoute         IntentType = "route"
	IntentDeparture     IntentType = "departure"
	IntentArrival       IntentType = "arrival"
	IntentAirline       IntentType = "airline"
	IntentActiveFlights IntentType = "active"
	IntentUnknown       IntentType = "unknown"
)

// QueryIntent is the structured result of classifying a free-text query.
// It is built once per query and not mutated afterwards; empty string
// fields mean the entity could not be resolved.
type QueryIntent struct {
	Type                IntentType `json:"type"`
	FlightNumber        string     `json:"flightNumber,omitempty"`
	DepartureAirport    string     `json:"departureAirport,omitempty"`
	ArrivalAirport      string     `json:"arrivalAirport,omitempty"`
	DepartureAlternates []string   `json:"departureAlternates,omitempty"`
	ArrivalAlternates   []string   `json:"arrivalAlternates,omitempty"`
	Airline             string     `json:"airline,omitempty"`
	Limit               int        `json:"limit"`
	Date                string     `json:"date,omitempty"`
	Time                string     `json:"time,omitempty"`
	Confidence          float64    `json:"confidence"`
}
