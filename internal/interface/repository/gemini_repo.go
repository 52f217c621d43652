package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/internal/domain/repository"
	"flightchat-service/pkg/logger"
)

const (
	geminiEndpoint   = "https://generativelanguage.googleapis.com/v1beta/models"
	maxPromptFlights = 5
	maxPromptHistory = 6
)

// GeminiRepository generates conversational replies through the Gemini REST API
type GeminiRepository struct {
	logger      logger.Logger
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewGeminiRepository creates a new Gemini responder repository
func NewGeminiRepository(apiKey, model string, temperature float64, maxTokens int, logger logger.Logger) repository.ResponderRepository {
	return &GeminiRepository{
		logger:      logger,
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateReply produces a natural-language answer for the user's query,
// grounded on the flights fetched for it. Falls back to a plain summary when
// the API is unavailable.
func (r *GeminiRepository) GenerateReply(ctx context.Context, query string, intent entity.QueryIntent, flights []entity.Flight, history []entity.ConversationTurn) (string, error) {
	if r.apiKey == "" {
		return fallbackReply(intent, flights), nil
	}

	prompt := r.buildPrompt(query, intent, flights, history)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     r.temperature,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: r.maxTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fallbackReply(intent, flights), fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiEndpoint, r.model, r.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fallbackReply(intent, flights), fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("Gemini request failed, using fallback", "error", err)
		return fallbackReply(intent, flights), nil
	}
	defer resp.Body.Close()

	var response geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		r.logger.Warn("Failed to decode Gemini response, using fallback", "error", err)
		return fallbackReply(intent, flights), nil
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("Gemini returned error, using fallback",
			"status", resp.StatusCode,
			"message", response.Error.Message)
		return fallbackReply(intent, flights), nil
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return fallbackReply(intent, flights), nil
	}

	reply := strings.TrimSpace(response.Candidates[0].Content.Parts[0].Text)
	if reply == "" {
		return fallbackReply(intent, flights), nil
	}

	return reply, nil
}

func (r *GeminiRepository) buildPrompt(query string, intent entity.QueryIntent, flights []entity.Flight, history []entity.ConversationTurn) string {
	var sb strings.Builder

	sb.WriteString("You are a helpful flight information assistant. Answer the user's question ")
	sb.WriteString("using only the flight data below. Be concise and friendly. ")
	sb.WriteString("If no flights match, say so and suggest rephrasing.\n\n")

	if len(history) > maxPromptHistory {
		history = history[len(history)-maxPromptHistory:]
	}
	if len(history) > 0 {
		sb.WriteString("Recent conversation:\n")
		for _, turn := range history {
			sb.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Detected intent: %s\n", intent.Type))
	if intent.FlightNumber != "" {
		sb.WriteString(fmt.Sprintf("Flight number: %s\n", intent.FlightNumber))
	}
	if intent.DepartureAirport != "" {
		sb.WriteString(fmt.Sprintf("Departure airport: %s\n", intent.DepartureAirport))
	}
	if intent.ArrivalAirport != "" {
		sb.WriteString(fmt.Sprintf("Arrival airport: %s\n", intent.ArrivalAirport))
	}
	if intent.Airline != "" {
		sb.WriteString(fmt.Sprintf("Airline: %s\n", intent.Airline))
	}

	if len(flights) == 0 {
		sb.WriteString("\nNo flights were found for this query.\n")
	} else {
		shown := flights
		if len(shown) > maxPromptFlights {
			shown = shown[:maxPromptFlights]
		}
		sb.WriteString(fmt.Sprintf("\nFlight data (%d of %d):\n", len(shown), len(flights)))
		for _, f := range shown {
			sb.WriteString(describeFlight(f))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("\nUser question: %s\n", query))
	return sb.String()
}

func describeFlight(f entity.Flight) string {
	var parts []string

	if f.FlightNumber != nil && f.FlightNumber.IATA != "" {
		parts = append(parts, f.FlightNumber.IATA)
	}
	if f.Airline != nil && f.Airline.Name != "" {
		parts = append(parts, f.Airline.Name)
	}
	if f.Departure != nil && f.Departure.IATA != "" {
		dep := f.Departure.IATA
		if f.Departure.Scheduled != "" {
			dep += " at " + f.Departure.Scheduled
		}
		parts = append(parts, "from "+dep)
	}
	if f.Arrival != nil && f.Arrival.IATA != "" {
		arr := f.Arrival.IATA
		if f.Arrival.Scheduled != "" {
			arr += " at " + f.Arrival.Scheduled
		}
		parts = append(parts, "to "+arr)
	}
	if f.FlightStatus != "" {
		parts = append(parts, "status "+f.FlightStatus)
	}

	return "- " + strings.Join(parts, ", ")
}

// fallbackReply builds a plain-text summary when Gemini is unreachable
func fallbackReply(intent entity.QueryIntent, flights []entity.Flight) string {
	if len(flights) == 0 {
		return "I couldn't find any flights matching your query. Try a flight number like EK215, or a route like 'flights from Dubai to London'."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("I found %d flight(s):\n", len(flights)))
	shown := flights
	if len(shown) > maxPromptFlights {
		shown = shown[:maxPromptFlights]
	}
	for _, f := range shown {
		sb.WriteString(describeFlight(f))
		sb.WriteString("\n")
	}
	if len(flights) > len(shown) {
		sb.WriteString(fmt.Sprintf("...and %d more.", len(flights)-len(shown)))
	}
	return strings.TrimSpace(sb.String())
}
