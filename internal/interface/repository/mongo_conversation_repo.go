package repository

import (
	"context"
	"time"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConversationRepository persists conversation history in MongoDB,
// one document per session with a capped turns array
type MongoConversationRepository struct {
	collection *mongo.Collection
	limit      int
}

type conversationDoc struct {
	SessionID string                    `bson:"_id"`
	Turns     []entity.ConversationTurn `bson:"turns"`
	UpdatedAt time.Time                 `bson:"updatedat"`
}

// NewMongoConversationRepository creates a new MongoDB conversation repository
func NewMongoConversationRepository(db *mongo.Database, limit int) repository.ConversationRepository {
	if limit <= 0 {
		limit = 20
	}
	return &MongoConversationRepository{
		collection: db.Collection("conversations"),
		limit:      limit,
	}
}

// Append pushes a turn onto the session document, keeping only the newest turns
func (r *MongoConversationRepository) Append(ctx context.Context, sessionID, role, content string) error {
	turn := entity.ConversationTurn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}

	update := bson.M{
		"$push": bson.M{
			"turns": bson.M{
				"$each":  []entity.ConversationTurn{turn},
				"$slice": -r.limit,
			},
		},
		"$set": bson.M{"updatedat": turn.Timestamp},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": sessionID}, update, opts)
	return err
}

// History returns the session's turns in chronological order
func (r *MongoConversationRepository) History(ctx context.Context, sessionID string) ([]entity.ConversationTurn, error) {
	var doc conversationDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []entity.ConversationTurn{}, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Turns, nil
}

// Clear removes the session document
func (r *MongoConversationRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}
