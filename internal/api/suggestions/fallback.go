package suggestions

import "github.com/FACorreiaa/go-travel-assistant/internal/types"

// fallbackSuggestions returns the static list substituted whenever the live
// place source errors out or yields nothing eligible. Always exactly three
// entries, ratings between 4.2 and 4.5, no photos.
func fallbackSuggestions() []types.TravelSuggestion {
	return []types.TravelSuggestion{
		{
			ID:          "fallback-1",
			Name:        "City Walking Tour",
			Distance:    "1.2km",
			TravelTime:  "15min",
			Type:        "Tourist Attraction",
			Description: "Explore the city center on foot and discover its main sights at your own pace.",
			Highlights:  []string{"Must-see attraction", "Iconic landmark", "Photo-worthy location"},
			BestFor:     []string{"First-time visitors", "Sightseers"},
			Rating:      4.5,
			Location:    "City Center",
		},
		{
			ID:          "fallback-2",
			Name:        "Historic District",
			Distance:    "2.0km",
			TravelTime:  "30min",
			Type:        "Point of Interest",
			Description: "Wander through the old town streets and soak in centuries of local history.",
			Highlights:  []string{"Cultural insights", "Educational experience"},
			BestFor:     []string{"Culture lovers", "History enthusiasts"},
			Rating:      4.3,
			Location:    "Old Town",
		},
		{
			ID:          "fallback-3",
			Name:        "Central Park & Gardens",
			Distance:    "2.5km",
			TravelTime:  "38min",
			Type:        "Park",
			Description: "A green escape in the middle of the city, ideal for a relaxed afternoon.",
			Highlights:  []string{"Outdoor activities", "Natural beauty"},
			BestFor:     []string{"Nature lovers", "Outdoor enthusiasts"},
			Rating:      4.2,
			Location:    "City Park",
		},
	}
}
