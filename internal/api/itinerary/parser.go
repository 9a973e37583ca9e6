package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

var validPeriods = map[string]bool{
	"morning":   true,
	"afternoon": true,
	"evening":   true,
}

// cleanJSONResponse strips markdown code fences and surrounding prose from a
// generative response, leaving the first top-level JSON object.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}
	response = strings.TrimSpace(response)

	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 || lastBrace <= firstBrace {
		return response
	}
	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}

// parseGeneratedItinerary parses and structurally validates a generative
// response. Any syntactic or structural failure maps to ErrMalformedResponse
// so nothing broken ever reaches storage.
func parseGeneratedItinerary(response string) (*types.GeneratedItinerary, error) {
	jsonStr := cleanJSONResponse(response)

	var itinerary types.GeneratedItinerary
	if err := json.Unmarshal([]byte(jsonStr), &itinerary); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary JSON: %w: %w", types.ErrMalformedResponse, err)
	}

	if err := validateGeneratedItinerary(&itinerary); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedResponse, err)
	}
	return &itinerary, nil
}

func validateGeneratedItinerary(itinerary *types.GeneratedItinerary) error {
	if strings.TrimSpace(itinerary.Title) == "" {
		return fmt.Errorf("itinerary title is empty")
	}
	if len(itinerary.Days) == 0 {
		return fmt.Errorf("itinerary has no days")
	}
	for i, day := range itinerary.Days {
		if day.Day != i+1 {
			return fmt.Errorf("day index %d at position %d: day numbers must be 1-based and contiguous", day.Day, i)
		}
		for _, activity := range day.Activities {
			if activity.Period != "" && !validPeriods[activity.Period] {
				return fmt.Errorf("day %d: unknown period %q", day.Day, activity.Period)
			}
		}
	}
	return nil
}
