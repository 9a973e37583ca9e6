package itinerary

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-assistant/internal/api"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

type HandlerImpl struct {
	itineraryService Service
	logger           *slog.Logger
}

func NewHandlerImpl(itineraryService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// CreateItinerary handles POST /itineraries and creates a draft record.
// @Summary      Create a draft itinerary
// @Tags         itineraries
// @Accept       json
// @Produce      json
// @Param        preferences  body      types.ItineraryPreferences  true  "Trip preferences"
// @Success      201  {object}  types.Itinerary
// @Failure      400  {object}  map[string]interface{}
// @Router       /itineraries [post]
func (h *HandlerImpl) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "CreateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itineraries"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "CreateItinerary"))
	l.DebugContext(ctx, "Create itinerary handler invoked")

	var preferences types.ItineraryPreferences
	if err := api.DecodeJSONBody(w, r, &preferences); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if preferences.Location == "" {
		l.ErrorContext(ctx, "Location is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "location is required")
		return
	}

	itinerary, err := h.itineraryService.CreateItinerary(ctx, preferences)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, fmt.Sprintf("Failed to create itinerary: %s", err.Error()))
		return
	}

	l.InfoContext(ctx, "Itinerary created", slog.String("itineraryID", itinerary.ID.String()))
	api.WriteJSONResponse(w, r, http.StatusCreated, itinerary)
}

// GetItinerary handles GET /itineraries/{itineraryID}.
// @Summary      Fetch an itinerary record
// @Tags         itineraries
// @Produce      json
// @Param        itineraryID  path      string  true  "Itinerary ID"
// @Success      200  {object}  types.Itinerary
// @Failure      404  {object}  map[string]interface{}
// @Router       /itineraries/{itineraryID} [get]
func (h *HandlerImpl) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itineraries/{itineraryID}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetItinerary"))

	itineraryID, ok := h.parseItineraryID(w, r, l)
	if !ok {
		return
	}

	itinerary, err := h.itineraryService.GetItinerary(ctx, itineraryID)
	if err != nil {
		h.writeServiceError(w, r, l, err, "Failed to fetch itinerary")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}

// GenerateItinerary handles POST /itineraries/{itineraryID}/generate. On
// failure the record keeps its prior status and payload.
// @Summary      Generate the itinerary content
// @Tags         itineraries
// @Produce      json
// @Param        itineraryID  path      string  true  "Itinerary ID"
// @Success      200  {object}  types.Itinerary
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /itineraries/{itineraryID}/generate [post]
func (h *HandlerImpl) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itineraries/{itineraryID}/generate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateItinerary"))
	l.DebugContext(ctx, "Generate itinerary handler invoked")

	itineraryID, ok := h.parseItineraryID(w, r, l)
	if !ok {
		return
	}
	span.SetAttributes(semconv.EnduserIDKey.String(itineraryID.String()))

	itinerary, err := h.itineraryService.GenerateItinerary(ctx, itineraryID)
	if err != nil {
		h.writeServiceError(w, r, l, err, "Itinerary generation failed")
		return
	}

	l.InfoContext(ctx, "Itinerary generated successfully", slog.String("itineraryID", itineraryID.String()))
	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}

// SaveItinerary handles POST /itineraries/{itineraryID}/save, the
// unconditional transition to saved.
// @Summary      Save an itinerary
// @Tags         itineraries
// @Produce      json
// @Param        itineraryID  path      string  true  "Itinerary ID"
// @Success      200  {object}  types.Itinerary
// @Failure      404  {object}  map[string]interface{}
// @Router       /itineraries/{itineraryID}/save [post]
func (h *HandlerImpl) SaveItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "SaveItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itineraries/{itineraryID}/save"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SaveItinerary"))

	itineraryID, ok := h.parseItineraryID(w, r, l)
	if !ok {
		return
	}

	itinerary, err := h.itineraryService.SaveItinerary(ctx, itineraryID)
	if err != nil {
		h.writeServiceError(w, r, l, err, "Failed to save itinerary")
		return
	}

	l.InfoContext(ctx, "Itinerary saved", slog.String("itineraryID", itineraryID.String()))
	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}

func (h *HandlerImpl) parseItineraryID(w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "itineraryID")
	if idStr == "" {
		l.Error("Itinerary ID is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Itinerary ID is required")
		return uuid.Nil, false
	}
	itineraryID, err := uuid.Parse(idStr)
	if err != nil {
		l.Error("Invalid itinerary ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid itinerary ID format")
		return uuid.Nil, false
	}
	return itineraryID, true
}

func (h *HandlerImpl) writeServiceError(w http.ResponseWriter, r *http.Request, l *slog.Logger, err error, message string) {
	l.ErrorContext(r.Context(), message, slog.Any("error", err))
	switch {
	case errors.Is(err, types.ErrItineraryNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, types.ErrItinerarySaved):
		api.ErrorResponse(w, r, http.StatusConflict, "Itinerary is already saved and cannot be regenerated")
	case errors.Is(err, types.ErrUpstreamProvider), errors.Is(err, types.ErrMalformedResponse):
		api.ErrorResponse(w, r, http.StatusBadGateway, message)
	default:
		api.ErrorResponse(w, r, http.StatusInternalServerError, fmt.Sprintf("%s: %s", message, err.Error()))
	}
}
