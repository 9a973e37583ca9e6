package suggestions

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-assistant/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-assistant/internal/api/places"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

// Default search radius when the caller does not provide one.
const defaultRadiusMeters = 25000

const (
	msgNotConfigured   = "Live place data is not configured. Showing generic suggestions."
	msgProviderFailure = "Live place data is temporarily unavailable. Showing generic suggestions."
	msgNoResults       = "No places found nearby. Showing generic suggestions."
)

var _ Service = (*ServiceImpl)(nil)

// PlaceSearcher is the external nearby-place-search collaborator.
type PlaceSearcher interface {
	SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]places.Place, error)
	PhotoURL(photoReference string) string
}

// Service defines the business logic contract for location suggestions.
type Service interface {
	GetLocationSuggestions(ctx context.Context, origin types.Coordinate, radiusMeters int) (*types.SuggestionsResponse, error)
}

// ServiceImpl provides the implementation for Service. The searcher may be
// nil when no credential is configured; every request then degrades to the
// static fallback list.
type ServiceImpl struct {
	logger   *slog.Logger
	searcher PlaceSearcher
}

func NewServiceImpl(searcher PlaceSearcher, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		searcher: searcher,
	}
}

// GetLocationSuggestions returns a bounded, classified suggestion list for a
// coordinate. Upstream failures and empty result sets are masked by the
// static fallback; this method never propagates an upstream error.
func (s *ServiceImpl) GetLocationSuggestions(ctx context.Context, origin types.Coordinate, radiusMeters int) (*types.SuggestionsResponse, error) {
	ctx, span := otel.Tracer("SuggestionService").Start(ctx, "GetLocationSuggestions", trace.WithAttributes(
		attribute.Float64("location.lat", origin.Latitude),
		attribute.Float64("location.lng", origin.Longitude),
	))
	defer span.End()

	if radiusMeters <= 0 {
		radiusMeters = defaultRadiusMeters
	}
	span.SetAttributes(attribute.Int("radius_meters", radiusMeters))
	metrics.Get().SuggestionRequestsTotal.Add(ctx, 1)

	if s.searcher == nil {
		s.logger.WarnContext(ctx, "Place search not configured, serving fallback suggestions")
		return s.fallback(ctx, span, msgNotConfigured), nil
	}

	results, err := s.searcher.SearchNearby(ctx, origin.Latitude, origin.Longitude, radiusMeters)
	if err != nil {
		s.logger.WarnContext(ctx, "Place search failed, serving fallback suggestions", slog.Any("error", err))
		span.RecordError(err)
		return s.fallback(ctx, span, msgProviderFailure), nil
	}

	ranked := rankPlaces(results, &origin, s.searcher.PhotoURL)
	if len(ranked) == 0 {
		s.logger.InfoContext(ctx, "No eligible places returned, serving fallback suggestions")
		return s.fallback(ctx, span, msgNoResults), nil
	}

	span.SetAttributes(attribute.Int("suggestions.count", len(ranked)))
	span.SetStatus(codes.Ok, "Suggestions ranked")
	return &types.SuggestionsResponse{Suggestions: ranked}, nil
}

func (s *ServiceImpl) fallback(ctx context.Context, span trace.Span, message string) *types.SuggestionsResponse {
	metrics.Get().SuggestionFallbacksTotal.Add(ctx, 1)
	span.SetAttributes(attribute.Bool("fallback", true))
	span.SetStatus(codes.Ok, "Fallback suggestions served")
	return &types.SuggestionsResponse{
		Suggestions: fallbackSuggestions(),
		Message:     message,
	}
}
