package types

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryStatus is the lifecycle of a stored itinerary record.
// draft -> generated via successful generation; generated -> saved only via an
// explicit user request. Regeneration keeps the record in generated.
type ItineraryStatus string

const (
	ItineraryStatusDraft     ItineraryStatus = "draft"
	ItineraryStatusGenerated ItineraryStatus = "generated"
	ItineraryStatusSaved     ItineraryStatus = "saved"
)

// ItineraryPreferences is the immutable trip input the generation prompt is
// built from. All fields are embedded verbatim into the prompt.
type ItineraryPreferences struct {
	Location      string `json:"location"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TripType      string `json:"trip_type"`
	Transport     string `json:"transport"`
	Accommodation string `json:"accommodation"`
	Dining        string `json:"dining"`
	AgeGroup      string `json:"age_group"`
	Interests     string `json:"interests"`
}

// ItineraryActivity is one scheduled item inside a day plan.
type ItineraryActivity struct {
	Time     string `json:"time"`
	Period   string `json:"period"` // morning|afternoon|evening
	Activity string `json:"activity"`
	Location string `json:"location"`
	Duration string `json:"duration,omitempty"`
	Cost     string `json:"cost,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// DayPlan holds one day of the generated itinerary. Day is 1-based and
// contiguous across the itinerary.
type DayPlan struct {
	Day        int                 `json:"day"`
	Date       string              `json:"date"`
	Title      string              `json:"title"`
	Activities []ItineraryActivity `json:"activities"`
}

// ItineraryRecommendations is the free-form advice block of a generated
// itinerary.
type ItineraryRecommendations struct {
	PhotoSpots  []string `json:"photo_spots"`
	LocalTips   []string `json:"local_tips"`
	PackingTips []string `json:"packing_tips"`
}

// GeneratedItinerary is the structured payload produced by the generative
// collaborator.
type GeneratedItinerary struct {
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	Duration        string                   `json:"duration"`
	Days            []DayPlan                `json:"days"`
	Recommendations ItineraryRecommendations `json:"recommendations"`
}

// Itinerary is a snapshot of the persisted record. The storage collaborator
// owns the authoritative copy; services receive and return snapshots only.
type Itinerary struct {
	ID               uuid.UUID            `json:"id"`
	Preferences      ItineraryPreferences `json:"preferences"`
	GeneratedContent *GeneratedItinerary  `json:"generated_content"`
	Status           ItineraryStatus      `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}
