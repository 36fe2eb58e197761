package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/greenmiles/greenroute/pkg/common"
	"github.com/greenmiles/greenroute/pkg/httpclient"
	"github.com/greenmiles/greenroute/pkg/logger"
	redisClient "github.com/greenmiles/greenroute/pkg/redis"
	"github.com/greenmiles/greenroute/pkg/resilience"
	"github.com/uber/h3-go/v4"
	"go.uber.org/zap"
)

const (
	geocodeCachePrefix = "geocode:"
	geocodeCacheTTL    = 24 * time.Hour

	// H3 resolution for annotating geocode results (~175m edge).
	h3ResolutionPlace = 9
)

// Geocoder resolves free-text place names via the Nominatim search API.
type Geocoder interface {
	Geocode(ctx context.Context, placeName string) (*GeocodedPlace, error)
}

// NominatimGeocoder is the production Geocoder backed by Nominatim.
type NominatimGeocoder struct {
	client  *httpclient.Client
	redis   redisClient.ClientInterface
	breaker *resilience.CircuitBreaker
}

// NewNominatimGeocoder creates a geocoder. Nominatim's usage policy
// requires an identifying User-Agent on every request.
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration, redis redisClient.ClientInterface) *NominatimGeocoder {
	return &NominatimGeocoder{
		client: httpclient.NewClient(baseURL, timeout, httpclient.WithUserAgent(userAgent)),
		redis:  redis,
	}
}

// SetCircuitBreaker enables circuit breaker protection for external calls.
func (g *NominatimGeocoder) SetCircuitBreaker(cb *resilience.CircuitBreaker) {
	g.breaker = cb
}

// nominatimResult is the wire shape of a Nominatim search hit. Latitude
// and longitude arrive as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a place name to coordinates. A single lookup with
// limit=1, no retries; zero results or any upstream failure surface as an
// error for the orchestrator to absorb.
func (g *NominatimGeocoder) Geocode(ctx context.Context, placeName string) (*GeocodedPlace, error) {
	if strings.TrimSpace(placeName) == "" {
		return nil, common.NewBadRequestError("place name is required", nil)
	}

	cacheKey := geocodeCachePrefix + strings.ToLower(strings.TrimSpace(placeName))
	if cached, err := g.getCached(ctx, cacheKey); err == nil {
		return cached, nil
	}

	params := url.Values{}
	params.Set("q", placeName)
	params.Set("format", "json")
	params.Set("limit", "1")

	body, err := g.doRequest(ctx, "/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, common.NewInternalServerError("failed to parse geocoding response")
	}

	if len(results) == 0 {
		return nil, common.NewNotFoundError(fmt.Sprintf("no match for place %q", placeName), nil)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, common.NewInternalServerError("invalid latitude in geocoding response")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, common.NewInternalServerError("invalid longitude in geocoding response")
	}

	place := &GeocodedPlace{
		Query:       placeName,
		DisplayName: results[0].DisplayName,
		Latitude:    lat,
		Longitude:   lon,
		H3Cell:      placeCell(lat, lon),
	}

	g.cache(ctx, cacheKey, place)
	return place, nil
}

// placeCell returns the H3 cell index for a location as a hex string.
func placeCell(lat, lon float64) string {
	cell, err := h3.LatLngToCell(h3.NewLatLng(lat, lon), h3ResolutionPlace)
	if err != nil {
		return ""
	}
	return cell.String()
}

// doRequest executes an HTTP request, optionally wrapped by the circuit breaker.
func (g *NominatimGeocoder) doRequest(ctx context.Context, path string) ([]byte, error) {
	call := func(ctx context.Context) (interface{}, error) {
		return g.client.Get(ctx, path, nil)
	}

	if g.breaker != nil {
		result, err := g.breaker.Execute(ctx, call)
		if err != nil {
			return nil, common.NewInternalErrorWithError("geocoding request failed", err)
		}
		return result.([]byte), nil
	}

	result, err := call(ctx)
	if err != nil {
		return nil, common.NewInternalErrorWithError("geocoding request failed", err)
	}
	return result.([]byte), nil
}

func (g *NominatimGeocoder) getCached(ctx context.Context, key string) (*GeocodedPlace, error) {
	if g.redis == nil {
		return nil, fmt.Errorf("no cache")
	}
	data, err := g.redis.GetString(ctx, key)
	if err != nil {
		return nil, err
	}
	var place GeocodedPlace
	if err := json.Unmarshal([]byte(data), &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (g *NominatimGeocoder) cache(ctx context.Context, key string, place *GeocodedPlace) {
	if g.redis == nil {
		return
	}
	data, err := json.Marshal(place)
	if err != nil {
		return
	}
	if err := g.redis.SetWithExpiration(ctx, key, data, geocodeCacheTTL); err != nil {
		logger.WarnContext(ctx, "failed to cache geocode result", zap.String("key", key), zap.Error(err))
	}
}
