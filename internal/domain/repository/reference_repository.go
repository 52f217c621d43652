package repository

import (
	"context"

	"flightchat-service/pkg/nlp"
)

// ReferenceRepository defines the interface for loading airline and airport
// reference rows that extend the built-in lexicon at startup
type ReferenceRepository interface {
	ListAirports(ctx context.Context) ([]nlp.AirportEntry, error)
	ListAirlines(ctx context.Context) ([]nlp.AirlineEntry, error)
}
