package repository

import (
	"context"
	"time"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoQueryLogRepository records classified queries for offline inspection
type MongoQueryLogRepository struct {
	collection *mongo.Collection
}

type queryLogDoc struct {
	SessionID   string    `bson:"sessionid"`
	Query       string    `bson:"query"`
	Intent      string    `bson:"intent"`
	Flight      string    `bson:"flightnumber,omitempty"`
	Departure   string    `bson:"departure,omitempty"`
	Arrival     string    `bson:"arrival,omitempty"`
	Airline     string    `bson:"airline,omitempty"`
	Limit       int       `bson:"limit"`
	Confidence  float64   `bson:"confidence"`
	ResultCount int       `bson:"resultcount"`
	CreatedAt   time.Time `bson:"createdat"`
}

// NewMongoQueryLogRepository creates a new MongoDB query log repository
func NewMongoQueryLogRepository(db *mongo.Database) repository.QueryLogRepository {
	collection := db.Collection("query_logs")

	ctx := context.Background()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"sessionid": 1}},
		{Keys: bson.M{"createdat": -1}},
		{Keys: bson.M{"intent": 1}},
	})

	return &MongoQueryLogRepository{collection: collection}
}

// Record inserts one log entry for a processed query
func (r *MongoQueryLogRepository) Record(ctx context.Context, sessionID, query string, intent entity.QueryIntent, resultCount int) error {
	doc := queryLogDoc{
		SessionID:   sessionID,
		Query:       query,
		Intent:      string(intent.Type),
		Flight:      intent.FlightNumber,
		Departure:   intent.DepartureAirport,
		Arrival:     intent.ArrivalAirport,
		Airline:     intent.Airline,
		Limit:       intent.Limit,
		Confidence:  intent.Confidence,
		ResultCount: resultCount,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}
