package repository

import (
	"context"

	"flightchat-service/internal/domain/entity"
)

// ConversationRepository defines the interface for per-session chat history.
// Implementations must keep appends to the same session atomic and evict the
// oldest turns once a session exceeds its cap.
type ConversationRepository interface {
	Append(ctx context.Context, sessionID, role, content string) error
	History(ctx context.Context, sessionID string) ([]entity.ConversationTurn, error)
	Clear(ctx context.Context, sessionID string) error
}
