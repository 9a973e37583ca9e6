package suggestions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

// MockSuggestionService is a mock implementation of the Service interface
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) GetLocationSuggestions(ctx context.Context, origin types.Coordinate, radiusMeters int) (*types.SuggestionsResponse, error) {
	args := m.Called(ctx, origin, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SuggestionsResponse), args.Error(1)
}

func TestGetLocationSuggestionsHandler(t *testing.T) {
	t.Run("Missing coordinates returns 400", func(t *testing.T) {
		handler := NewHandlerImpl(new(MockSuggestionService), testLogger())
		req := httptest.NewRequest(http.MethodGet, "/location-suggestions", nil)
		rr := httptest.NewRecorder()

		handler.GetLocationSuggestions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Non-numeric latitude returns 400", func(t *testing.T) {
		handler := NewHandlerImpl(new(MockSuggestionService), testLogger())
		req := httptest.NewRequest(http.MethodGet, "/location-suggestions?lat=abc&lng=2.35", nil)
		rr := httptest.NewRecorder()

		handler.GetLocationSuggestions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Out-of-range coordinate returns 400", func(t *testing.T) {
		handler := NewHandlerImpl(new(MockSuggestionService), testLogger())
		req := httptest.NewRequest(http.MethodGet, "/location-suggestions?lat=91&lng=2.35", nil)
		rr := httptest.NewRecorder()

		handler.GetLocationSuggestions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Non-integer radius returns 400", func(t *testing.T) {
		handler := NewHandlerImpl(new(MockSuggestionService), testLogger())
		req := httptest.NewRequest(http.MethodGet, "/location-suggestions?lat=48.85&lng=2.35&radius=far", nil)
		rr := httptest.NewRecorder()

		handler.GetLocationSuggestions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Valid request returns suggestions", func(t *testing.T) {
		service := new(MockSuggestionService)
		service.On("GetLocationSuggestions", mock.Anything, types.Coordinate{Latitude: 48.85, Longitude: 2.35}, 5000).
			Return(&types.SuggestionsResponse{
				Suggestions: []types.TravelSuggestion{{ID: "p1", Name: "Louvre"}},
			}, nil)

		handler := NewHandlerImpl(service, testLogger())
		req := httptest.NewRequest(http.MethodGet, "/location-suggestions?lat=48.85&lng=2.35&radius=5000", nil)
		rr := httptest.NewRecorder()

		handler.GetLocationSuggestions(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp types.SuggestionsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Suggestions, 1)
		assert.Equal(t, "p1", resp.Suggestions[0].ID)
		service.AssertExpectations(t)
	})

	t.Run("Radius omitted passes zero to the service", func(t *testing.T) {
		service := new(MockSuggestionService)
		service.On("GetLocationSuggestions", mock.Anything, types.Coordinate{Latitude: 48.85, Longitude: 2.35}, 0).
			Return(&types.SuggestionsResponse{Suggestions: fallbackSuggestions()}, nil)

		handler := NewHandlerImpl(service, testLogger())
		req := httptest.NewRequest(http.MethodGet, "/location-suggestions?lat=48.85&lng=2.35", nil)
		rr := httptest.NewRecorder()

		handler.GetLocationSuggestions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		service.AssertExpectations(t)
	})
}
