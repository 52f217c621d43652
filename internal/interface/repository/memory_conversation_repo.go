package repository

import (
	"context"
	"sync"
	"time"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/internal/domain/repository"
)

// MemoryConversationRepository keeps conversation history in process memory.
// Each session holds at most `limit` turns; older turns are evicted first.
type MemoryConversationRepository struct {
	mu       sync.Mutex
	sessions map[string][]entity.ConversationTurn
	limit    int
}

// NewMemoryConversationRepository creates a new in-memory conversation store
func NewMemoryConversationRepository(limit int) repository.ConversationRepository {
	if limit <= 0 {
		limit = 20
	}
	return &MemoryConversationRepository{
		sessions: make(map[string][]entity.ConversationTurn),
		limit:    limit,
	}
}

// Append adds a turn to the session history, evicting the oldest if full
func (r *MemoryConversationRepository) Append(ctx context.Context, sessionID, role, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns := append(r.sessions[sessionID], entity.ConversationTurn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	if len(turns) > r.limit {
		turns = turns[len(turns)-r.limit:]
	}
	r.sessions[sessionID] = turns
	return nil
}

// History returns a copy of the session's turns in chronological order
func (r *MemoryConversationRepository) History(ctx context.Context, sessionID string) ([]entity.ConversationTurn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns := r.sessions[sessionID]
	out := make([]entity.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}

// Clear removes all history for the session
func (r *MemoryConversationRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
