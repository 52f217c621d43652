package repository

import (
	"context"

	"flightchat-service/internal/domain/entity"
)

// FlightRepository defines the interface for flight-data lookups
type FlightRepository interface {
	GetByAirline(ctx context.Context, airlineIATA string, limit int) ([]entity.Flight, error)
	GetByDepartureAirport(ctx context.Context, departureIATA string, limit int) ([]entity.Flight, error)
	GetByArrivalAirport(ctx context.Context, arrivalIATA string, limit int) ([]entity.Flight, error)
	GetByRoute(ctx context.Context, departureIATA, arrivalIATA string, limit int) ([]entity.Flight, error)
	GetByNumber(ctx context.Context, flightIATA string, limit int) ([]entity.Flight, error)
	GetActive(ctx context.Context, limit int) ([]entity.Flight, error)
}
