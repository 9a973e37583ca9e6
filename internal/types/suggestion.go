package types

import "math"

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Valid reports whether both components are finite and inside the
// -90..90 / -180..180 envelope. Callers must reject invalid coordinates
// before handing them to the distance calculator.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// TravelSuggestion is a single classified, presentable place. Built fresh on
// every ranking call and never mutated afterwards.
type TravelSuggestion struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Distance    string   `json:"distance"`
	TravelTime  string   `json:"travel_time"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	BestFor     []string `json:"best_for"`
	Rating      float64  `json:"rating"`
	Location    string   `json:"location"`
	Photos      []string `json:"photos,omitempty"`
}

// SuggestionsResponse is the boundary payload for location suggestions.
// Message carries the advisory note when the fallback list was substituted.
type SuggestionsResponse struct {
	Suggestions []TravelSuggestion `json:"suggestions"`
	Message     string             `json:"message,omitempty"`
}
