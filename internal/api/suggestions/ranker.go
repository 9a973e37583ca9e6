package suggestions

import (
	"github.com/FACorreiaa/go-travel-assistant/internal/api/places"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

const (
	maxSuggestions = 6
	// Used when the requester's coordinate is unknown.
	fallbackDistanceKm = 5
	defaultRating      = 4.0
)

// rankPlaces turns raw search results into at most maxSuggestions classified
// suggestions. Ineligible places are dropped; input order is preserved, no
// re-sorting by distance or rating happens here. photoURL may be nil when no
// photo resolver is available.
func rankPlaces(results []places.Place, origin *types.Coordinate, photoURL func(string) string) []types.TravelSuggestion {
	suggestions := make([]types.TravelSuggestion, 0, maxSuggestions)

	for _, place := range results {
		if len(suggestions) >= maxSuggestions {
			break
		}
		if !isEligible(place.Types) {
			continue
		}

		distanceKm := float64(fallbackDistanceKm)
		if origin != nil {
			distanceKm = calculateDistance(
				origin.Latitude, origin.Longitude,
				place.Geometry.Location.Lat, place.Geometry.Location.Lng,
			)
		}

		rating := defaultRating
		if place.Rating != nil {
			rating = *place.Rating
		}
		ratingCount := 0
		if place.UserRatingsTotal != nil {
			ratingCount = *place.UserRatingsTotal
		}
		location := ""
		if place.Vicinity != nil {
			location = *place.Vicinity
		}

		var photos []string
		if photoURL != nil {
			for _, photo := range place.Photos {
				photos = append(photos, photoURL(photo.PhotoReference))
			}
		}

		displayType := classifyType(place.Types)
		suggestions = append(suggestions, types.TravelSuggestion{
			ID:          place.PlaceID,
			Name:        place.Name,
			Distance:    formatDistance(distanceKm),
			TravelTime:  formatTravelTime(estimateTravelMinutes(distanceKm)),
			Type:        displayType,
			Description: describePlace(place.Name, displayType),
			Highlights:  buildHighlights(place.Types, rating, ratingCount, len(place.Photos) > 0),
			BestFor:     buildAudienceTags(place.Types),
			Rating:      rating,
			Location:    location,
			Photos:      photos,
		})
	}

	return suggestions
}
