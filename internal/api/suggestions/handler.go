package suggestions

import (
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-assistant/internal/api"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

type HandlerImpl struct {
	suggestionService Service
	logger            *slog.Logger
}

func NewHandlerImpl(suggestionService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		suggestionService: suggestionService,
		logger:            logger,
	}
}

// GetLocationSuggestions handles GET /location-suggestions.
// @Summary      Nearby travel suggestions
// @Description  Returns up to 6 classified suggestions around a coordinate, or a static fallback list when live data is unavailable.
// @Tags         suggestions
// @Produce      json
// @Param        lat     query  number  true   "Latitude in decimal degrees"
// @Param        lng     query  number  true   "Longitude in decimal degrees"
// @Param        radius  query  int     false  "Search radius in meters (default 25000)"
// @Success      200  {object}  types.SuggestionsResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /location-suggestions [get]
func (h *HandlerImpl) GetLocationSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SuggestionHandler").Start(r.Context(), "GetLocationSuggestions", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/location-suggestions"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetLocationSuggestions"))
	l.DebugContext(ctx, "Location suggestions handler invoked")

	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")
	if latStr == "" || lngStr == "" {
		l.ErrorContext(ctx, "Missing lat or lng query parameter")
		api.ErrorResponse(w, r, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		l.ErrorContext(ctx, "Invalid lat parameter", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "lat must be a number")
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		l.ErrorContext(ctx, "Invalid lng parameter", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "lng must be a number")
		return
	}

	origin := types.Coordinate{Latitude: lat, Longitude: lng}
	if !origin.Valid() {
		l.ErrorContext(ctx, "Coordinate out of range", slog.Float64("lat", lat), slog.Float64("lng", lng))
		api.ErrorResponse(w, r, http.StatusBadRequest, "lat must be within [-90,90] and lng within [-180,180]")
		return
	}

	radiusMeters := 0
	if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
		radiusMeters, err = strconv.Atoi(radiusStr)
		if err != nil {
			l.ErrorContext(ctx, "Invalid radius parameter", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, "radius must be an integer")
			return
		}
	}

	response, err := h.suggestionService.GetLocationSuggestions(ctx, origin, radiusMeters)
	if err != nil {
		// Only programming errors reach this branch; upstream failures are
		// masked inside the service.
		l.ErrorContext(ctx, "Failed to build suggestions", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to build suggestions")
		return
	}

	l.InfoContext(ctx, "Suggestions returned", slog.Int("count", len(response.Suggestions)))
	api.WriteJSONResponse(w, r, http.StatusOK, response)
}
