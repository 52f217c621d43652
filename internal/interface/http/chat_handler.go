package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/internal/usecase"
	"flightchat-service/pkg/logger"
)

// ChatHandler exposes the chat processor over HTTP
type ChatHandler struct {
	processor *usecase.ChatProcessor
	logger    logger.Logger
	version   string
}

// NewChatHandler creates a new chat HTTP handler
func NewChatHandler(processor *usecase.ChatProcessor, version string, logger logger.Logger) *ChatHandler {
	return &ChatHandler{
		processor: processor,
		logger:    logger,
		version:   version,
	}
}

// Register mounts the chat routes on the given mux
func (h *ChatHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/chat/message", h.handleMessage)
	mux.HandleFunc("/api/chat/suggestions", h.handleSuggestions)
	mux.HandleFunc("/api/chat/info", h.handleInfo)
	mux.HandleFunc("/api/conversation/history", h.handleHistory)
}

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Message     string             `json:"message"`
	Type        string             `json:"type"`
	Flights     []entity.Flight    `json:"flights,omitempty"`
	FlightCount int                `json:"flight_count"`
	HasData     bool               `json:"has_data"`
	Intent      entity.QueryIntent `json:"intent"`
	Timestamp   time.Time          `json:"timestamp"`
}

func (h *ChatHandler) handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	result, err := h.processor.ProcessMessage(r.Context(), req.SessionID, req.Message)
	if err != nil {
		// Processing failures stay a chat-level condition, not a transport one
		h.logger.Error("Failed to process message", "sessionId", req.SessionID, "error", err)
		writeJSON(w, http.StatusOK, chatResponse{
			Message:   "Something went wrong handling that message. Please try again.",
			Type:      "error",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Message:     result.Reply,
		Type:        string(result.Intent.Type),
		Flights:     result.Flights,
		FlightCount: len(result.Flights),
		HasData:     len(result.Flights) > 0,
		Intent:      result.Intent,
		Timestamp:   time.Now().UTC(),
	})
}

func (h *ChatHandler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": h.processor.Suggestions(),
	})
}

func (h *ChatHandler) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "flightchat-service",
		"version": h.version,
		"intents": []string{
			"greeting", "help", "flight_number", "route",
			"departure", "arrival", "airline", "active", "unknown",
		},
	})
}

func (h *ChatHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		turns, err := h.processor.History(r.Context(), sessionID)
		if err != nil {
			h.logger.Error("Failed to load history", "sessionId", sessionID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load history")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"sessionId": sessionID,
			"turns":     turns,
		})

	case http.MethodDelete:
		if err := h.processor.ClearHistory(r.Context(), sessionID); err != nil {
			h.logger.Error("Failed to clear history", "sessionId", sessionID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to clear history")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"cleared": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
