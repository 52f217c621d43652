package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightchat-service/internal/infrastructure/config"
	"flightchat-service/internal/infrastructure/persistence"
	chathttp "flightchat-service/internal/interface/http"
	ifaceRepo "flightchat-service/internal/interface/repository"
	"flightchat-service/internal/usecase"
	"flightchat-service/pkg/logger"
	"flightchat-service/pkg/metrics"
	"flightchat-service/pkg/nlp"

	"flightchat-service/internal/domain/repository"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flightchat Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appMetrics := metrics.NewMetrics("flightchat")

	// Build the lexicon, extending it with reference rows when PostgreSQL
	// is configured
	lexicon := buildLexicon(ctx, cfg, log)
	extractor := nlp.NewExtractor(lexicon, log)

	// Optional MongoDB for the query log and the conversation store
	var (
		mongoDisconnect func()
		convRepo        repository.ConversationRepository
		queryLogRepo    repository.QueryLogRepository
	)

	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		mongoDisconnect = func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}

		queryLogRepo = ifaceRepo.NewMongoQueryLogRepository(db)
		if cfg.ConversationStore == "mongo" {
			convRepo = ifaceRepo.NewMongoConversationRepository(db, cfg.HistoryLimit)
		}
	} else if cfg.ConversationStore == "mongo" {
		log.Warn("CONVERSATION_STORE=mongo but MONGODB_DSN is empty, falling back to memory store")
	}

	if convRepo == nil {
		convRepo = ifaceRepo.NewMemoryConversationRepository(cfg.HistoryLimit)
	}

	if !cfg.FlightAPIConfigured() {
		log.Warn("Flight API key missing or placeholder, lookups will return empty results")
	}
	flightRepo := ifaceRepo.NewAviationstackRepository(cfg.FlightAPIBaseURL, cfg.FlightAPIKey, cfg.FlightAPITimeout, log)

	geminiKey := cfg.GeminiAPIKey
	if !cfg.GeminiConfigured() {
		log.Warn("Gemini key missing or placeholder, replies will use plain summaries")
		geminiKey = ""
	}
	responderRepo := ifaceRepo.NewGeminiRepository(geminiKey, cfg.GeminiModel, cfg.GeminiTemperature, cfg.GeminiMaxTokens, log)

	processor := usecase.NewChatProcessor(extractor, flightRepo, responderRepo, convRepo, queryLogRepo, log, appMetrics)

	// Set up HTTP server
	mux := http.NewServeMux()
	chatHandler := chathttp.NewChatHandler(processor, cfg.AppVersion, log)
	chatHandler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if mongoDisconnect != nil {
		mongoDisconnect()
	}

	log.Info("Flightchat Service stopped")
}

// buildLexicon merges optional PostgreSQL reference rows into the built-in
// airport and airline tables
func buildLexicon(ctx context.Context, cfg *config.Config, log logger.Logger) *nlp.Lexicon {
	if cfg.PostgresURI == "" {
		return nlp.NewLexicon()
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Warn("Failed to connect to PostgreSQL, using built-in reference data", "error", err)
		return nlp.NewLexicon()
	}

	refRepo := ifaceRepo.NewGormReferenceRepository(gormDB)
	airports, err := refRepo.ListAirports(ctx)
	if err != nil {
		log.Warn("Failed to load airport reference rows", "error", err)
	}
	airlines, err := refRepo.ListAirlines(ctx)
	if err != nil {
		log.Warn("Failed to load airline reference rows", "error", err)
	}

	log.Info("Loaded reference data", "airports", len(airports), "airlines", len(airlines))
	return nlp.NewLexiconWithEntries(airports, airlines)
}
