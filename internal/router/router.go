package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-travel-assistant/docs"
	"github.com/FACorreiaa/go-travel-assistant/internal/api/itinerary"
	"github.com/FACorreiaa/go-travel-assistant/internal/api/suggestions"
)

// Config contains the handlers the router wires up. Server-wide middleware
// (logger, requestID, recoverer) is applied before mounting this router in
// main.go.
type Config struct {
	SuggestionHandler *suggestions.HandlerImpl
	ItineraryHandler  *itinerary.HandlerImpl
}

// SetupRouter initializes and configures the main application router.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/location-suggestions", cfg.SuggestionHandler.GetLocationSuggestions)

		r.Route("/itineraries", func(r chi.Router) {
			r.Post("/", cfg.ItineraryHandler.CreateItinerary)
			r.Get("/{itineraryID}", cfg.ItineraryHandler.GetItinerary)
			r.Post("/{itineraryID}/generate", cfg.ItineraryHandler.GenerateItinerary)
			r.Post("/{itineraryID}/save", cfg.ItineraryHandler.SaveItinerary)
		})
	})

	return r
}
