package container

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/go-travel-assistant/app/db"
	"github.com/FACorreiaa/go-travel-assistant/config"
	generativeAI "github.com/FACorreiaa/go-travel-assistant/internal/api/generative_ai"
	"github.com/FACorreiaa/go-travel-assistant/internal/api/itinerary"
	"github.com/FACorreiaa/go-travel-assistant/internal/api/places"
	"github.com/FACorreiaa/go-travel-assistant/internal/api/suggestions"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

// Container holds all application dependencies.
type Container struct {
	Config            *config.Config
	Logger            *slog.Logger
	Pool              *pgxpool.Pool
	SuggestionHandler *suggestions.HandlerImpl
	ItineraryHandler  *itinerary.HandlerImpl
}

// NewContainer initializes and returns a new dependency container. A missing
// Places credential degrades suggestions to the static fallback; a missing
// Gemini credential is fatal because generation has no fallback.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	var searcher suggestions.PlaceSearcher
	placesClient, err := places.NewClient(cfg, logger)
	switch {
	case err == nil:
		searcher = placesClient
	case errors.Is(err, types.ErrConfiguration):
		logger.Warn("Place search credential missing, suggestions will use the static fallback")
	default:
		return nil, err
	}

	aiClient, err := generativeAI.NewAIClient(ctx, cfg)
	if err != nil {
		logger.Error("Failed to create AI client", slog.Any("error", err))
		return nil, err
	}

	suggestionService := suggestions.NewServiceImpl(searcher, logger)
	suggestionHandler := suggestions.NewHandlerImpl(suggestionService, logger)

	itineraryRepo := itinerary.NewPostgresItineraryRepo(pool, logger)
	itineraryService := itinerary.NewServiceImpl(itineraryRepo, aiClient, logger)
	itineraryHandler := itinerary.NewHandlerImpl(itineraryService, logger)

	return &Container{
		Config:            cfg,
		Logger:            logger,
		Pool:              pool,
		SuggestionHandler: suggestionHandler,
		ItineraryHandler:  itineraryHandler,
	}, nil
}

// Close releases all resources held by the container.
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready.
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}
