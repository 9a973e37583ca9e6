package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-assistant/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-travel-assistant/internal/api/generative_ai"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for itinerary records and
// their generation state machine.
type Service interface {
	CreateItinerary(ctx context.Context, preferences types.ItineraryPreferences) (*types.Itinerary, error)
	GetItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error)
	GenerateItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error)
	SaveItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error)
}

// ServiceImpl drives the draft -> generated -> saved lifecycle. The
// generative collaborator and storage are injected so tests can substitute
// fakes.
type ServiceImpl struct {
	logger        *slog.Logger
	itineraryRepo Repository
	generator     generativeAI.Generator
}

func NewServiceImpl(itineraryRepo Repository, generator generativeAI.Generator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:        logger,
		itineraryRepo: itineraryRepo,
		generator:     generator,
	}
}

func (s *ServiceImpl) CreateItinerary(ctx context.Context, preferences types.ItineraryPreferences) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "CreateItinerary")
	defer span.End()

	itinerary, err := s.itineraryRepo.CreateItinerary(ctx, preferences)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to create itinerary", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}

	span.SetAttributes(attribute.String("itinerary.id", itinerary.ID.String()))
	span.SetStatus(codes.Ok, "Itinerary created")
	return itinerary, nil
}

func (s *ServiceImpl) GetItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetItinerary", trace.WithAttributes(
		attribute.String("itinerary.id", itineraryID.String()),
	))
	defer span.End()

	itinerary, err := s.itineraryRepo.GetItinerary(ctx, itineraryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to get itinerary", slog.Any("error", err))
		span.RecordError(err)
		return nil, err
	}

	span.SetStatus(codes.Ok, "Itinerary retrieved")
	return itinerary, nil
}

// GenerateItinerary runs one generation pass: build the prompt, call the
// generative collaborator, parse and validate, persist with status
// generated. Any failure leaves the record exactly as it was and surfaces
// once; nothing is retried. Re-invocation on a generated record overwrites
// the prior payload.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("itinerary.id", itineraryID.String()),
	))
	defer span.End()

	l := s.logger.With(slog.String("itineraryID", itineraryID.String()))
	metrics.Get().GenerationRequestsTotal.Add(ctx, 1)
	startTime := time.Now()

	itinerary, err := s.itineraryRepo.GetItinerary(ctx, itineraryID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if itinerary.Status == types.ItineraryStatusSaved {
		span.AddEvent("Generation refused on saved itinerary")
		return nil, types.ErrItinerarySaved
	}

	prompt := buildItineraryPrompt(itinerary.Preferences)
	response, err := s.generator.GenerateStructuredContent(ctx, itinerarySystemPrompt, prompt)
	if err != nil {
		l.ErrorContext(ctx, "Generative collaborator failed", slog.Any("error", err))
		metrics.Get().GenerationFailuresTotal.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation failed")
		return nil, fmt.Errorf("itinerary generation failed: %w", err)
	}

	content, err := parseGeneratedItinerary(response)
	if err != nil {
		l.ErrorContext(ctx, "Generative response rejected", slog.Any("error", err))
		metrics.Get().GenerationFailuresTotal.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Response rejected")
		return nil, err
	}

	updated, err := s.itineraryRepo.UpdateGeneratedContent(ctx, itineraryID, content, types.ItineraryStatusGenerated)
	if err != nil {
		l.ErrorContext(ctx, "Repository failed to persist generated itinerary", slog.Any("error", err))
		metrics.Get().GenerationFailuresTotal.Add(ctx, 1)
		span.RecordError(err)
		return nil, fmt.Errorf("failed to persist generated itinerary: %w", err)
	}

	metrics.Get().GenerationDurationSeconds.Record(ctx, time.Since(startTime).Seconds())
	l.InfoContext(ctx, "Itinerary generated",
		slog.Int("days", len(content.Days)),
		slog.Duration("latency", time.Since(startTime)),
	)
	span.SetAttributes(attribute.Int("itinerary.days", len(content.Days)))
	span.SetStatus(codes.Ok, "Itinerary generated")
	return updated, nil
}

// SaveItinerary performs the unconditional pass-through transition to saved.
func (s *ServiceImpl) SaveItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "SaveItinerary", trace.WithAttributes(
		attribute.String("itinerary.id", itineraryID.String()),
	))
	defer span.End()

	itinerary, err := s.itineraryRepo.UpdateStatus(ctx, itineraryID, types.ItineraryStatusSaved)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save itinerary", slog.Any("error", err))
		span.RecordError(err)
		return nil, err
	}

	span.SetStatus(codes.Ok, "Itinerary saved")
	return itinerary, nil
}
