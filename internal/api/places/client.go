package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-travel-assistant/config"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

const (
	defaultBaseURL = "https://maps.googleapis.com"
	nearbyPath     = "/maps/api/place/nearbysearch/json"
	photoPath      = "/maps/api/place/photo"

	// Raw provider responses are cached briefly to spare the quota. Ranking
	// output is never cached.
	cacheTTL      = 5 * time.Minute
	cacheCleanup  = 10 * time.Minute
	clientTimeout = 10 * time.Second
)

// Client calls the Nearby Search provider. Credentials are injected at
// construction; there is no process-wide state.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	apiKey     string
	baseURL    string
	cache      *cache.Cache
	group      singleflight.Group
}

// NewClient builds a place-search client. A missing API key surfaces
// eagerly as a configuration error instead of failing on first call.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Providers.Places.APIKey == "" {
		return nil, fmt.Errorf("places API key: %w", types.ErrConfiguration)
	}
	baseURL := cfg.Providers.Places.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: clientTimeout},
		apiKey:     cfg.Providers.Places.APIKey,
		baseURL:    baseURL,
		cache:      cache.New(cacheTTL, cacheCleanup),
	}, nil
}

// SearchNearby returns the raw places around a coordinate within radiusMeters.
// Concurrent identical searches are collapsed and responses are cached for a
// short TTL.
func (c *Client) SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]Place, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "SearchNearby", trace.WithAttributes(
		attribute.Float64("location.lat", lat),
		attribute.Float64("location.lng", lng),
		attribute.Int("radius_meters", radiusMeters),
	))
	defer span.End()

	key := fmt.Sprintf("nearby:%.4f:%.4f:%d", lat, lng, radiusMeters)
	if cached, found := c.cache.Get(key); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		span.SetStatus(codes.Ok, "Nearby search served from cache")
		return cached.([]Place), nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		results, err := c.fetchNearby(ctx, lat, lng, radiusMeters)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, results, cache.DefaultExpiration)
		return results, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Nearby search failed")
		return nil, err
	}

	places := result.([]Place)
	span.SetAttributes(attribute.Int("results.count", len(places)))
	span.SetStatus(codes.Ok, "Nearby search completed")
	return places, nil
}

func (c *Client) fetchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]Place, error) {
	query := url.Values{}
	query.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	query.Set("radius", fmt.Sprintf("%d", radiusMeters))
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+nearbyPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build nearby search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nearby search request: %w: %w", types.ErrUpstreamProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nearby search returned HTTP %d: %w", resp.StatusCode, types.ErrUpstreamProvider)
	}

	var body nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode nearby search response: %w: %w", types.ErrUpstreamProvider, err)
	}

	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		c.logger.WarnContext(ctx, "Place search provider reported error status",
			slog.String("status", body.Status),
			slog.String("error_message", body.ErrorMessage),
		)
		return nil, fmt.Errorf("nearby search status %s: %w", body.Status, types.ErrUpstreamProvider)
	}

	return body.Results, nil
}

// PhotoURL resolves a photo reference into a fetchable Place Photo URL.
func (c *Client) PhotoURL(photoReference string) string {
	query := url.Values{}
	query.Set("maxwidth", "400")
	query.Set("photo_reference", photoReference)
	query.Set("key", c.apiKey)
	return c.baseURL + photoPath + "?" + query.Encode()
}
