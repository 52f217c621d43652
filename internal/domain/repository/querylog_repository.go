package repository

import (
	"context"

	"flightchat-service/internal/domain/entity"
)

// QueryLogRepository defines the interface for recording classified queries
// for offline inspection. Writes are best-effort telemetry.
type QueryLogRepository interface {
	Record(ctx context.Context, sessionID, query string, intent entity.QueryIntent, resultCount int) error
}
