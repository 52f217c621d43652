package usecase

import (
	"context"
	"time"

	"flightchat-service/internal/domain/entity"
	"flightchat-service/internal/domain/repository"
	"flightchat-service/pkg/logger"
	"flightchat-service/pkg/metrics"
	"flightchat-service/pkg/nlp"
)

const (
	greetingReply = "Hello! I'm your flight assistant. Ask me about flights by number (like EK215), by route ('flights from Dubai to London'), by airline ('Emirates flights'), or just ask what's flying right now."
	helpReply     = "Here's what I can do:\n" +
		"- Look up a flight by number: 'status of EK215'\n" +
		"- Find flights on a route: 'flights from London to Tokyo'\n" +
		"- Search by departure or arrival: 'departures from Singapore'\n" +
		"- Search by airline: 'show me Emirates flights'\n" +
		"- Show active flights: 'what's in the air right now'\n" +
		"You can also add a count, like 'show me 5 flights from Paris'."
	unknownReply = "I'm not sure what you're looking for. Try a flight number like EK215, a route like 'flights from Dubai to London', or an airline name."
)

// ChatProcessor handles a chat message end to end: classify the query,
// fetch matching flights and generate a reply
type ChatProcessor struct {
	extractor     *nlp.Extractor
	flightRepo    repository.FlightRepository
	responderRepo repository.ResponderRepository
	convRepo      repository.ConversationRepository
	queryLogRepo  repository.QueryLogRepository
	logger        logger.Logger
	metrics       *metrics.Metrics
}

// NewChatProcessor creates a new chat processor
func NewChatProcessor(
	extractor *nlp.Extractor,
	flightRepo repository.FlightRepository,
	responderRepo repository.ResponderRepository,
	convRepo repository.ConversationRepository,
	queryLogRepo repository.QueryLogRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *ChatProcessor {
	return &ChatProcessor{
		extractor:     extractor,
		flightRepo:    flightRepo,
		responderRepo: responderRepo,
		convRepo:      convRepo,
		queryLogRepo:  queryLogRepo,
		logger:        logger,
		metrics:       metrics,
	}
}

// ChatResult is what the transport layer renders for one message
type ChatResult struct {
	Reply   string             `json:"reply"`
	Intent  entity.QueryIntent `json:"intent"`
	Flights []entity.Flight    `json:"flights,omitempty"`
}

// ProcessMessage classifies the message, fetches flights where the intent
// calls for it and produces a reply. Conversation history is updated with
// both sides of the exchange.
func (p *ChatProcessor) ProcessMessage(ctx context.Context, sessionID, message string) (*ChatResult, error) {
	p.metrics.QueriesProcessed.Inc()

	if err := p.convRepo.Append(ctx, sessionID, entity.RoleUser, message); err != nil {
		p.logger.Warn("Failed to record user turn", "sessionId", sessionID, "error", err)
	}

	start := time.Now()
	intent := p.extractor.Parse(message)
	p.metrics.ClassificationTime.Observe(time.Since(start).Seconds())
	p.metrics.IntentsClassified.WithLabelValues(string(intent.Type)).Inc()

	p.logger.Info("Processing chat message",
		"sessionId", sessionID,
		"intent", intent.Type,
		"confidence", intent.Confidence)

	var (
		reply   string
		flights []entity.Flight
	)

	switch intent.Type {
	case entity.IntentGreeting:
		reply = greetingReply
	case entity.IntentHelp:
		reply = helpReply
	case entity.IntentUnknown:
		reply = unknownReply
	default:
		flights = p.fetchFlights(ctx, intent)

		history, err := p.convRepo.History(ctx, sessionID)
		if err != nil {
			p.logger.Warn("Failed to load history", "sessionId", sessionID, "error", err)
		}

		reply, err = p.responderRepo.GenerateReply(ctx, message, intent, flights, history)
		if err != nil {
			p.logger.Warn("Responder failed", "sessionId", sessionID, "error", err)
			p.metrics.ErrorsCount.WithLabelValues("generate_reply").Inc()
		}
	}

	if err := p.convRepo.Append(ctx, sessionID, entity.RoleAssistant, reply); err != nil {
		p.logger.Warn("Failed to record assistant turn", "sessionId", sessionID, "error", err)
	}

	if p.queryLogRepo != nil {
		if err := p.queryLogRepo.Record(ctx, sessionID, message, intent, len(flights)); err != nil {
			p.logger.Warn("Failed to record query log", "error", err)
			p.metrics.ErrorsCount.WithLabelValues("query_log").Inc()
		}
	}

	return &ChatResult{
		Reply:   reply,
		Intent:  intent,
		Flights: flights,
	}, nil
}

// fetchFlights dispatches to the flight repository based on the intent.
// Lookup failures degrade to an empty result set so the chat stays usable.
func (p *ChatProcessor) fetchFlights(ctx context.Context, intent entity.QueryIntent) []entity.Flight {
	start := time.Now()
	defer func() {
		p.metrics.FlightLookupTime.Observe(time.Since(start).Seconds())
	}()

	flights, err := p.lookup(ctx, intent)
	if err != nil {
		p.logger.Error("Flight lookup failed", "intent", intent.Type, "error", err)
		p.metrics.ErrorsCount.WithLabelValues("flight_lookup").Inc()
		return []entity.Flight{}
	}
	if flights == nil {
		flights = []entity.Flight{}
	}
	return flights
}

func (p *ChatProcessor) lookup(ctx context.Context, intent entity.QueryIntent) ([]entity.Flight, error) {
	switch intent.Type {
	case entity.IntentFlightNumber:
		return p.flightRepo.GetByNumber(ctx, intent.FlightNumber, intent.Limit)

	case entity.IntentRoute:
		return p.lookupRoute(ctx, intent)

	case entity.IntentDeparture:
		if intent.DepartureAirport == "" {
			return p.flightRepo.GetActive(ctx, intent.Limit)
		}
		return p.flightRepo.GetByDepartureAirport(ctx, intent.DepartureAirport, intent.Limit)

	case entity.IntentArrival:
		if intent.ArrivalAirport == "" {
			return p.flightRepo.GetActive(ctx, intent.Limit)
		}
		return p.flightRepo.GetByArrivalAirport(ctx, intent.ArrivalAirport, intent.Limit)

	case entity.IntentAirline:
		if intent.Airline == "" {
			return p.flightRepo.GetActive(ctx, intent.Limit)
		}
		return p.flightRepo.GetByAirline(ctx, intent.Airline, intent.Limit)

	default:
		return p.flightRepo.GetActive(ctx, intent.Limit)
	}
}

// lookupRoute tries the resolved pair first, then alternate airports for
// either endpoint, then single-endpoint lookups, before giving up to the
// unfiltered feed.
func (p *ChatProcessor) lookupRoute(ctx context.Context, intent entity.QueryIntent) ([]entity.Flight, error) {
	dep := intent.DepartureAirport
	arr := intent.ArrivalAirport

	if dep != "" && arr != "" {
		flights, err := p.flightRepo.GetByRoute(ctx, dep, arr, intent.Limit)
		if err != nil {
			return nil, err
		}
		if len(flights) > 0 {
			return flights, nil
		}

		for _, altDep := range intent.DepartureAlternates {
			flights, err = p.flightRepo.GetByRoute(ctx, altDep, arr, intent.Limit)
			if err != nil {
				return nil, err
			}
			if len(flights) > 0 {
				return flights, nil
			}
		}
		for _, altArr := range intent.ArrivalAlternates {
			flights, err = p.flightRepo.GetByRoute(ctx, dep, altArr, intent.Limit)
			if err != nil {
				return nil, err
			}
			if len(flights) > 0 {
				return flights, nil
			}
		}
	}

	if dep != "" {
		return p.flightRepo.GetByDepartureAirport(ctx, dep, intent.Limit)
	}
	if arr != "" {
		return p.flightRepo.GetByArrivalAirport(ctx, arr, intent.Limit)
	}
	return p.flightRepo.GetActive(ctx, intent.Limit)
}

// Suggestions returns example queries for the chat UI
func (p *ChatProcessor) Suggestions() []string {
	return []string{
		"What's the status of EK215?",
		"Show me flights from Dubai to London",
		"Emirates flights departing today",
		"Flights arriving at Tokyo",
		"Show me 5 active flights",
	}
}

// History returns the stored conversation for a session
func (p *ChatProcessor) History(ctx context.Context, sessionID string) ([]entity.ConversationTurn, error) {
	return p.convRepo.History(ctx, sessionID)
}

// ClearHistory drops the stored conversation for a session
func (p *ChatProcessor) ClearHistory(ctx context.Context, sessionID string) error {
	return p.convRepo.Clear(ctx, sessionID)
}
