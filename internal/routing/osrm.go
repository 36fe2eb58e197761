package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/greenmiles/greenroute/pkg/common"
	"github.com/greenmiles/greenroute/pkg/httpclient"
	"github.com/greenmiles/greenroute/pkg/resilience"
)

// RouteSource fetches candidate driving routes between two coordinates.
type RouteSource interface {
	FetchRoutes(ctx context.Context, origin, destination Coordinate) (*RouteData, error)
}

// OSRMRouteSource is the production RouteSource backed by an OSRM server.
type OSRMRouteSource struct {
	client  *httpclient.Client
	breaker *resilience.CircuitBreaker
}

// NewOSRMRouteSource creates a route source.
func NewOSRMRouteSource(baseURL, userAgent string, timeout time.Duration) *OSRMRouteSource {
	return &OSRMRouteSource{
		client: httpclient.NewClient(baseURL, timeout, httpclient.WithUserAgent(userAgent)),
	}
}

// SetCircuitBreaker enables circuit breaker protection for external calls.
func (o *OSRMRouteSource) SetCircuitBreaker(cb *resilience.CircuitBreaker) {
	o.breaker = cb
}

// osrmResponse is the wire shape of an OSRM route response. OSRM
// coordinates are [lon, lat].
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
		Legs     []struct {
			Steps []struct {
				Name     string `json:"name"`
				Maneuver struct {
					Type string `json:"type"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// FetchRoutes requests up to 3 alternative paths in one call and derives
// the stop count and highway signal from the primary route's steps. Any
// non-Ok code, empty route list or network failure is an error for the
// orchestrator to absorb.
func (o *OSRMRouteSource) FetchRoutes(ctx context.Context, origin, destination Coordinate) (*RouteData, error) {
	params := url.Values{}
	params.Set("alternatives", "3")
	params.Set("steps", "true")
	params.Set("overview", "full")

	path := fmt.Sprintf("/route/v1/driving/%f,%f;%f,%f?%s",
		origin.Longitude, origin.Latitude,
		destination.Longitude, destination.Latitude,
		params.Encode(),
	)

	body, err := o.doRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	var resp osrmResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, common.NewInternalServerError("failed to parse routing response")
	}

	if resp.Code != "Ok" {
		return nil, common.NewInternalServerError(fmt.Sprintf("routing API error: %s", resp.Code))
	}

	if len(resp.Routes) == 0 {
		return nil, common.NewNotFoundError("no routes found", nil)
	}

	data := &RouteData{
		Routes: make([]BaseRoute, 0, len(resp.Routes)),
	}
	for _, r := range resp.Routes {
		data.Routes = append(data.Routes, BaseRoute{
			DistanceMeters:  r.Distance,
			DurationSeconds: r.Duration,
			Geometry:        r.Geometry,
		})
	}

	for _, leg := range resp.Routes[0].Legs {
		for _, step := range leg.Steps {
			if isStopManeuver(step.Maneuver.Type) {
				data.StopCount++
			}
			if isHighwayName(step.Name) {
				data.HasHighway = true
			}
		}
	}

	return data, nil
}

func isStopManeuver(maneuverType string) bool {
	return strings.Contains(maneuverType, "turn") || strings.Contains(maneuverType, "roundabout")
}

func isHighwayName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "highway") ||
		strings.Contains(lower, "expressway") ||
		strings.Contains(lower, "motorway")
}

// doRequest executes an HTTP request, optionally wrapped by the circuit breaker.
func (o *OSRMRouteSource) doRequest(ctx context.Context, path string) ([]byte, error) {
	call := func(ctx context.Context) (interface{}, error) {
		return o.client.Get(ctx, path, nil)
	}

	if o.breaker != nil {
		result, err := o.breaker.Execute(ctx, call)
		if err != nil {
			return nil, common.NewInternalErrorWithError("routing request failed", err)
		}
		return result.([]byte), nil
	}

	result, err := call(ctx)
	if err != nil {
		return nil, common.NewInternalErrorWithError("routing request failed", err)
	}
	return result.([]byte), nil
}
