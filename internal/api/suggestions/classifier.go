package suggestions

import (
	"fmt"
	"strings"
)

// typePriority is the fixed order used to pick a display type from a place's
// category tags. First match wins.
var typePriority = []string{
	"tourist_attraction",
	"museum",
	"amusement_park",
	"zoo",
	"aquarium",
	"art_gallery",
	"park",
	"natural_feature",
	"point_of_interest",
}

var typeLabels = map[string]string{
	"tourist_attraction": "Tourist Attraction",
	"museum":             "Museum",
	"amusement_park":     "Amusement Park",
	"zoo":                "Zoo",
	"aquarium":           "Aquarium",
	"art_gallery":        "Art Gallery",
	"park":               "Park",
	"natural_feature":    "Natural Feature",
	"point_of_interest":  "Point of Interest",
}

const defaultTypeLabel = "Attraction"

// eligibleTypes is the travel-relevance whitelist. A place whose tags do not
// intersect it is dropped before ranking.
var eligibleTypes = map[string]bool{
	"tourist_attraction": true,
	"museum":             true,
	"amusement_park":     true,
	"zoo":                true,
	"aquarium":           true,
	"art_gallery":        true,
	"park":               true,
	"natural_feature":    true,
	"point_of_interest":  true,
	"establishment":      true,
}

const (
	maxHighlights   = 3
	maxAudienceTags = 2
)

// isEligible reports whether the category-tag set intersects the whitelist.
func isEligible(tags []string) bool {
	for _, t := range tags {
		if eligibleTypes[t] {
			return true
		}
	}
	return false
}

// classifyType picks the display type for a tag set following typePriority.
func classifyType(tags []string) string {
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}
	for _, t := range typePriority {
		if tagSet[t] {
			return typeLabels[t]
		}
	}
	return defaultTypeLabel
}

// describePlace builds the deterministic one-line description shown under a
// suggestion.
func describePlace(name, displayType string) string {
	return fmt.Sprintf("%s is a popular %s worth visiting during your trip.", name, strings.ToLower(displayType))
}

// buildHighlights appends highlight tags in a fixed order and truncates to
// maxHighlights: rating-based first, then popularity, then photos, then
// type-specific pairs.
func buildHighlights(tags []string, rating float64, ratingCount int, hasPhotos bool) []string {
	highlights := make([]string, 0, maxHighlights)
	if rating >= 4.5 {
		highlights = append(highlights, "Highly rated destination")
	}
	if ratingCount > 100 {
		highlights = append(highlights, "Popular with visitors")
	}
	if hasPhotos {
		highlights = append(highlights, "Photo-worthy location")
	}

	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}
	if tagSet["museum"] {
		highlights = append(highlights, "Educational experience", "Cultural insights")
	}
	if tagSet["park"] {
		highlights = append(highlights, "Outdoor activities", "Natural beauty")
	}
	if tagSet["tourist_attraction"] {
		highlights = append(highlights, "Must-see attraction", "Iconic landmark")
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

// buildAudienceTags derives who the place suits best, truncated to
// maxAudienceTags. Falls back to generic tags when no category matched.
func buildAudienceTags(tags []string) []string {
	audience := make([]string, 0, maxAudienceTags)
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	if tagSet["museum"] || tagSet["art_gallery"] {
		audience = append(audience, "Culture lovers", "History enthusiasts")
	}
	if tagSet["park"] || tagSet["natural_feature"] {
		audience = append(audience, "Nature lovers", "Outdoor enthusiasts")
	}
	if tagSet["amusement_park"] || tagSet["zoo"] {
		audience = append(audience, "Families", "Adventure seekers")
	}
	if tagSet["tourist_attraction"] {
		audience = append(audience, "First-time visitors", "Sightseers")
	}
	if len(audience) == 0 {
		audience = append(audience, "All travelers", "Local exploration")
	}

	if len(audience) > maxAudienceTags {
		audience = audience[:maxAudienceTags]
	}
	return audience
}
