package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/pkg/logger"
)

func TestAviationstackFetchByRoute(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}

		json.NewEncoder(w).Encode(entity.FlightAPIResponse{
			Data: []entity.Flight{
				{
					FlightStatus: "scheduled",
					FlightNumber: &entity.FlightNumber{IATA: "EK1"},
					Departure:    &entity.FlightStop{IATA: "DXB"},
					Arrival:      &entity.FlightStop{IATA: "LHR"},
				},
			},
		})
	}))
	defer server.Close()

	repo := NewAviationstackRepository(server.URL, "test-key", 5*time.Second, logger.NewNopLogger())

	flights, err := repo.GetByRoute(context.Background(), "DXB", "LHR", 10)
	if err != nil {
		t.Fatalf("GetByRoute: %v", err)
	}
	if len(flights) != 1 {
		t.Fatalf("got %d flights, want 1", len(flights))
	}
	if flights[0].FlightNumber.IATA != "EK1" {
		t.Errorf("flight number = %q", flights[0].FlightNumber.IATA)
	}

	want := map[string]string{
		"access_key": "test-key",
		"dep_iata":   "DXB",
		"arr_iata":   "LHR",
		"limit":      "10",
	}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Errorf("query %s = %q, want %q", key, gotQuery[key], value)
		}
	}
}

func TestAviationstackDegradedStatuses(t *testing.T) {
	// Auth and quota errors degrade to empty results instead of failing
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		repo := NewAviationstackRepository(server.URL, "bad-key", 5*time.Second, logger.NewNopLogger())
		flights, err := repo.GetActive(context.Background(), 10)
		server.Close()

		if err != nil {
			t.Errorf("status %d: unexpected error %v", status, err)
		}
		if len(flights) != 0 {
			t.Errorf("status %d: got %d flights, want 0", status, len(flights))
		}
	}
}

func TestAviationstackServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewAviationstackRepository(server.URL, "test-key", 5*time.Second, logger.NewNopLogger())
	if _, err := repo.GetActive(context.Background(), 10); err == nil {
		t.Error("expected error for status 500")
	}
}

func TestFallbackReply(t *testing.T) {
	intent := entity.QueryIntent{Type: entity.IntentRoute}

	empty := fallbackReply(intent, nil)
	if empty == "" {
		t.Error("empty-result fallback should still say something")
	}

	withData := fallbackReply(intent, []entity.Flight{
		{
			FlightStatus: "active",
			FlightNumber: &entity.FlightNumber{IATA: "EK215"},
			Airline:      &entity.AirlineInfo{Name: "Emirates"},
			Departure:    &entity.FlightStop{IATA: "DXB"},
			Arrival:      &entity.FlightStop{IATA: "LAX"},
		},
	})
	for _, fragment := range []string{"EK215", "Emirates", "DXB", "LAX"} {
		if !strings.Contains(withData, fragment) {
			t.Errorf("fallback reply missing %q: %s", fragment, withData)
		}
	}
}
