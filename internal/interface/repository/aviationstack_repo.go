package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/internal/domain/repository"
	"flightchat-service/pkg/logger"
)

// AviationstackRepository fetches flight data from the aviationstack API
type AviationstackRepository struct {
	logger  logger.Logger
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAviationstackRepository creates a new aviationstack repository
func NewAviationstackRepository(baseURL, apiKey string, timeout time.Duration, logger logger.Logger) repository.FlightRepository {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &AviationstackRepository{
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetByAirline returns flights operated by the given airline IATA code
func (r *AviationstackRepository) GetByAirline(ctx context.Context, airlineCode string, limit int) ([]entity.Flight, error) {
	return r.fetch(ctx, map[string]string{"airline_iata": airlineCode}, limit)
}

// GetByDepartureAirport returns flights departing from the given airport
func (r *AviationstackRepository) GetByDepartureAirport(ctx context.Context, airportCode string, limit int) ([]entity.Flight, error) {
	return r.fetch(ctx, map[string]string{"dep_iata": airportCode}, limit)
}

// GetByArrivalAirport returns flights arriving at the given airport
func (r *AviationstackRepository) GetByArrivalAirport(ctx context.Context, airportCode string, limit int) ([]entity.Flight, error) {
	return r.fetch(ctx, map[string]string{"arr_iata": airportCode}, limit)
}

// GetByRoute returns flights between two airports
func (r *AviationstackRepository) GetByRoute(ctx context.Context, depCode, arrCode string, limit int) ([]entity.Flight, error) {
	return r.fetch(ctx, map[string]string{"dep_iata": depCode, "arr_iata": arrCode}, limit)
}

// GetByNumber returns flights matching the given flight IATA number
func (r *AviationstackRepository) GetByNumber(ctx context.Context, flightNumber string, limit int) ([]entity.Flight, error) {
	return r.fetch(ctx, map[string]string{"flight_iata": flightNumber}, limit)
}

// GetActive returns currently tracked flights with no filter
func (r *AviationstackRepository) GetActive(ctx context.Context, limit int) ([]entity.Flight, error) {
	return r.fetch(ctx, nil, limit)
}

func (r *AviationstackRepository) fetch(ctx context.Context, params map[string]string, limit int) ([]entity.Flight, error) {
	query := url.Values{}
	query.Set("access_key", r.apiKey)
	query.Set("limit", strconv.Itoa(limit))
	for key, value := range params {
		query.Set(key, value)
	}

	endpoint := fmt.Sprintf("%s/flights?%s", r.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		// Transport errors embed the full request URL; scrub the key
		return nil, fmt.Errorf("failed to fetch flights: %s", r.redact(err.Error()))
	}
	defer resp.Body.Close()

	// Auth and quota failures are degraded-mode conditions, not hard errors.
	// The chat layer answers with an empty result set instead of a 500.
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		r.logger.Warn("Flight API rejected credentials", "status", resp.StatusCode)
		return []entity.Flight{}, nil
	case http.StatusTooManyRequests:
		r.logger.Warn("Flight API rate limit reached", "status", resp.StatusCode)
		return []entity.Flight{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight API returned status %d", resp.StatusCode)
	}

	var apiResponse entity.FlightAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("failed to decode flight response: %w", err)
	}

	r.logger.Debug("Fetched flights",
		"params", params,
		"limit", limit,
		"count", len(apiResponse.Data))

	return apiResponse.Data, nil
}

func (r *AviationstackRepository) redact(msg string) string {
	if r.apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, r.apiKey, "***")
}
