package types

import "errors"

// Error taxonomy shared across the suggestion and generation flows. Every
// failure is either masked by the static fallback (suggestions) or surfaced
// once to the caller (generation); nothing is retried.
var (
	// ErrConfiguration marks a missing credential. Fatal for generation,
	// treated like an upstream failure (fallback) for suggestions.
	ErrConfiguration = errors.New("required credential is not configured")

	// ErrUpstreamProvider marks a non-success response or provider-reported
	// error code from an external collaborator.
	ErrUpstreamProvider = errors.New("upstream provider request failed")

	// ErrMalformedResponse marks generative output that could not be parsed
	// or validated as a GeneratedItinerary. Nothing is persisted.
	ErrMalformedResponse = errors.New("malformed response from generative provider")

	// ErrItineraryNotFound marks a lookup for an unknown itinerary record.
	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrItinerarySaved marks a generation attempt on a record the user has
	// already saved.
	ErrItinerarySaved = errors.New("itinerary is already saved")
)
