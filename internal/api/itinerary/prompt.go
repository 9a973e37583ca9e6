package itinerary

import (
	"fmt"

	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

// System instruction constraining the generative collaborator to the
// GeneratedItinerary shape. Paired with the forced application/json response
// mode on the client.
const itinerarySystemPrompt = `
        You are a travel planning assistant. You always answer with a single JSON object and nothing else.
        The object must have this exact shape:
        {
        "title": "A creative title for the trip",
        "description": "A one-line description of the trip",
        "duration": "A duration label, e.g. '5 days'",
        "days": [
            {
            "day": <int, 1-based, contiguous, no gaps>,
            "date": "YYYY-MM-DD",
            "title": "Theme of the day",
            "activities": [
                {
                "time": "e.g. 09:00",
                "period": "morning|afternoon|evening",
                "activity": "What to do",
                "location": "Where",
                "duration": "optional, e.g. '2 hours'",
                "cost": "optional, e.g. '€15'",
                "notes": "optional practical notes"
                }
            ]
            }
        ],
        "recommendations": {
            "photo_spots": ["..."],
            "local_tips": ["..."],
            "packing_tips": ["..."]
        }
        }`

// buildItineraryPrompt embeds every preference field verbatim into a single
// deterministic prompt. Identical preferences always produce the identical
// prompt; the collaborator's output may still vary between calls.
func buildItineraryPrompt(prefs types.ItineraryPreferences) string {
	return fmt.Sprintf(`
        Generate a complete day-by-day travel itinerary for the following trip.
        - Destination: %s
        - Start date: %s
        - End date: %s
        - Trip type: %s
        - Transport: %s
        - Accommodation: %s
        - Dining preference: %s
        - Age group: %s
        - Interests: %s
        Cover every day from the start date to the end date with morning, afternoon and evening activities.
        Return the response STRICTLY as a JSON object with the agreed shape.`,
		prefs.Location,
		prefs.StartDate,
		prefs.EndDate,
		prefs.TripType,
		prefs.Transport,
		prefs.Accommodation,
		prefs.Dining,
		prefs.AgeGroup,
		prefs.Interests,
	)
}
