package suggestions

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-assistant/internal/api/places"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrString(v string) *string  { return &v }

func testPlace(id, name string, tags []string, lat, lng float64) places.Place {
	return places.Place{
		PlaceID:  id,
		Name:     name,
		Types:    tags,
		Geometry: places.Geometry{Location: places.Location{Lat: lat, Lng: lng}},
	}
}

func TestRankPlaces(t *testing.T) {
	paris := &types.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	t.Run("Input order preserved and ineligible dropped", func(t *testing.T) {
		results := []places.Place{
			testPlace("p1", "Louvre", []string{"museum", "tourist_attraction"}, 48.8606, 2.3376),
			testPlace("x1", "Some Restaurant", []string{"restaurant", "food"}, 48.8600, 2.3400),
			testPlace("p2", "Tuileries Garden", []string{"park"}, 48.8635, 2.3275),
		}
		ranked := rankPlaces(results, paris, nil)

		require.Len(t, ranked, 2)
		assert.Equal(t, "p1", ranked[0].ID)
		assert.Equal(t, "p2", ranked[1].ID)
	})

	t.Run("Capped at six", func(t *testing.T) {
		var results []places.Place
		for i := 0; i < 10; i++ {
			results = append(results, testPlace(
				fmt.Sprintf("p%d", i), fmt.Sprintf("Place %d", i),
				[]string{"tourist_attraction"}, 48.8566, 2.3522,
			))
		}
		ranked := rankPlaces(results, paris, nil)

		require.Len(t, ranked, maxSuggestions)
		for i, s := range ranked {
			assert.Equal(t, fmt.Sprintf("p%d", i), s.ID)
		}
	})

	t.Run("Defaults applied when provider omits fields", func(t *testing.T) {
		ranked := rankPlaces([]places.Place{
			testPlace("p1", "Nameless Corner", []string{"point_of_interest"}, 48.8566, 2.3522),
		}, paris, nil)

		require.Len(t, ranked, 1)
		assert.Equal(t, defaultRating, ranked[0].Rating)
		assert.Empty(t, ranked[0].Location)
		assert.Empty(t, ranked[0].Photos)
	})

	t.Run("Nil origin uses fallback distance", func(t *testing.T) {
		ranked := rankPlaces([]places.Place{
			testPlace("p1", "Louvre", []string{"museum"}, 48.8606, 2.3376),
		}, nil, nil)

		require.Len(t, ranked, 1)
		assert.Equal(t, "5.0km", ranked[0].Distance)
		// 5 km at 40 km/h is 7.5 minutes, rounded to 8
		assert.Equal(t, "8min", ranked[0].TravelTime)
	})

	t.Run("Full suggestion fields populated", func(t *testing.T) {
		place := testPlace("p1", "Louvre", []string{"museum", "tourist_attraction"}, 48.8606, 2.3376)
		place.Rating = ptrFloat(4.7)
		place.UserRatingsTotal = ptrInt(140000)
		place.Vicinity = ptrString("Rue de Rivoli, Paris")
		place.Photos = []places.Photo{{PhotoReference: "ref-1"}}

		ranked := rankPlaces([]places.Place{place}, paris, func(ref string) string {
			return "https://photos.example/" + ref
		})

		require.Len(t, ranked, 1)
		s := ranked[0]
		assert.Equal(t, "Tourist Attraction", s.Type)
		assert.Equal(t, "Louvre is a popular tourist attraction worth visiting during your trip.", s.Description)
		assert.Equal(t, 4.7, s.Rating)
		assert.Equal(t, "Rue de Rivoli, Paris", s.Location)
		assert.Equal(t, []string{"https://photos.example/ref-1"}, s.Photos)
		assert.Equal(t, []string{"Highly rated destination", "Popular with visitors", "Photo-worthy location"}, s.Highlights)
		assert.Equal(t, []string{"Culture lovers", "History enthusiasts"}, s.BestFor)
		// Louvre is ~1.2km from the reference point, so km formatting applies
		assert.Regexp(t, `^\d\.\dkm$`, s.Distance)
	})
}

func TestFallbackSuggestions(t *testing.T) {
	fallback := fallbackSuggestions()

	require.Len(t, fallback, 3)
	for i, s := range fallback {
		assert.Equal(t, fmt.Sprintf("fallback-%d", i+1), s.ID)
		assert.GreaterOrEqual(t, s.Rating, 4.2)
		assert.LessOrEqual(t, s.Rating, 4.5)
		assert.Empty(t, s.Photos)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
	}
	assert.Equal(t, 4.5, fallback[0].Rating)
	assert.Equal(t, 4.3, fallback[1].Rating)
	assert.Equal(t, 4.2, fallback[2].Rating)
}
