package repository

import (
	"context"

	"flightchat-service/internal/domain/entity"
)

// ResponderRepository defines the interface for generating conversational
// reply text from a classified query, the flights it matched and the prior
// session history
type ResponderRepository interface {
	GenerateReply(ctx context.Context, query string, intent entity.QueryIntent, flights []entity.Flight, history []entity.ConversationTurn) (string, error)
}
